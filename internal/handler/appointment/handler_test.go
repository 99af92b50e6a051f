package appointment

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/handler/handlertest"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) one(args mock.Arguments) (*model.OutPatientAppointment, error) {
	v, _ := args.Get(0).(*model.OutPatientAppointment)
	return v, args.Error(1)
}

func (m *mockService) many(args mock.Arguments) ([]*model.OutPatientAppointment, error) {
	v, _ := args.Get(0).([]*model.OutPatientAppointment)
	return v, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.OutPatientAppointment, error) {
	return m.one(m.Called(ctx, req))
}

func (m *mockService) Get(ctx context.Context, id string) (*model.OutPatientAppointment, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, page model.Page) ([]*model.OutPatientAppointment, error) {
	return m.many(m.Called(ctx, page))
}

func (m *mockService) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return m.many(m.Called(ctx, patientID, page))
}

func (m *mockService) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return m.many(m.Called(ctx, doctorID, page))
}

func (m *mockService) Today(ctx context.Context) ([]*model.OutPatientAppointment, error) {
	return m.many(m.Called(ctx))
}

func (m *mockService) Update(ctx context.Context, id string, patch model.AppointmentPatch) (*model.OutPatientAppointment, error) {
	return m.one(m.Called(ctx, id, patch))
}

func (m *mockService) Cancel(ctx context.Context, id string) (*model.OutPatientAppointment, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) SendReminder(ctx context.Context, id string) (*model.OutPatientAppointment, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupTest() (*gin.Engine, *mockService) {
	svc := new(mockService)
	return handlertest.NewRouter(handlertest.Doctor, NewHandler(svc).RegisterRoutes), svc
}

func TestCreateAppointment(t *testing.T) {
	r, svc := setupTest()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.CreateAppointmentRequest) bool {
		return req.PatientID == "op-1" && req.Type == model.AppointmentWalkIn
	})).Return(&model.OutPatientAppointment{ID: "op-apt-1", Status: model.AppointmentScheduled}, nil)

	w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/out-patients", map[string]interface{}{
		"patient_id": "op-1",
		"date":       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		"type":       "walk-in",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateAppointmentRejectsUnknownType(t *testing.T) {
	r, svc := setupTest()

	w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/out-patients", map[string]interface{}{
		"patient_id": "op-1",
		"date":       "2024-05-01T09:00:00Z",
		"type":       "carrier-pigeon",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCancelAppointment(t *testing.T) {
	r, svc := setupTest()
	svc.On("Cancel", mock.Anything, "op-apt-1").Return(&model.OutPatientAppointment{ID: "op-apt-1", Status: model.AppointmentCancelled}, nil)

	w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/out-patients/op-apt-1/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.OutPatientAppointment
	handlertest.DecodeData(t, w, &got)
	assert.Equal(t, model.AppointmentCancelled, got.Status)
}

func TestTodayIsNotAnID(t *testing.T) {
	r, svc := setupTest()
	svc.On("Today", mock.Anything).Return([]*model.OutPatientAppointment{{ID: "op-apt-1"}}, nil)

	w := handlertest.Do(t, r, http.MethodGet, "/api/appointments/out-patients/today", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSendReminder(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "sent", wantStatus: http.StatusOK},
		{name: "no email", err: errors.BadRequest("Patient has no email address", nil), wantStatus: http.StatusBadRequest},
		{name: "missing", err: errors.NotFound("Appointment", nil), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupTest()
			if tt.err != nil {
				svc.On("SendReminder", mock.Anything, "op-apt-1").Return(nil, tt.err)
			} else {
				svc.On("SendReminder", mock.Anything, "op-apt-1").Return(&model.OutPatientAppointment{ID: "op-apt-1", ReminderSent: true}, nil)
			}

			w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/out-patients/op-apt-1/remind", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestListAppointmentsByPatient(t *testing.T) {
	r, svc := setupTest()
	svc.On("ListByPatient", mock.Anything, "op-1", model.DefaultPage()).Return([]*model.OutPatientAppointment{{ID: "op-apt-1"}}, nil)

	w := handlertest.Do(t, r, http.MethodGet, "/api/appointments/out-patients?patient_id=op-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
