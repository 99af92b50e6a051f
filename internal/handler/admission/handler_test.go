package admission

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/handler/handlertest"
	"github.com/jwalitptl/hospital-api/internal/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) one(args mock.Arguments) (*model.InPatientAdmission, error) {
	v, _ := args.Get(0).(*model.InPatientAdmission)
	return v, args.Error(1)
}

func (m *mockService) many(args mock.Arguments) ([]*model.InPatientAdmission, error) {
	v, _ := args.Get(0).([]*model.InPatientAdmission)
	return v, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req model.CreateAdmissionRequest) (*model.InPatientAdmission, error) {
	return m.one(m.Called(ctx, req))
}

func (m *mockService) Get(ctx context.Context, id string) (*model.InPatientAdmission, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error) {
	return m.many(m.Called(ctx, page))
}

func (m *mockService) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error) {
	return m.many(m.Called(ctx, patientID, page))
}

func (m *mockService) ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error) {
	return m.many(m.Called(ctx, page))
}

func (m *mockService) Update(ctx context.Context, id string, patch model.AdmissionPatch) (*model.InPatientAdmission, error) {
	return m.one(m.Called(ctx, id, patch))
}

func (m *mockService) Discharge(ctx context.Context, id string) (*model.InPatientAdmission, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupTest() (*gin.Engine, *mockService) {
	svc := new(mockService)
	return handlertest.NewRouter(handlertest.Doctor, NewHandler(svc).RegisterRoutes), svc
}

func TestCreateAdmission(t *testing.T) {
	r, svc := setupTest()
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.CreateAdmissionRequest) bool {
		return req.PatientID == "ip-1" && req.AdmissionType == model.AdmissionElective
	})).Return(&model.InPatientAdmission{ID: "ip-adm-1", Status: model.AdmissionScheduled}, nil)

	w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/in-patients", map[string]string{
		"patient_id":     "ip-1",
		"admission_date": "2024-05-01T09:00:00Z",
		"admission_type": "elective",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc.AssertExpectations(t)
}

func TestListActiveAdmissions(t *testing.T) {
	r, svc := setupTest()
	svc.On("ListActive", mock.Anything, model.Page{Offset: 0, Limit: 50}).Return([]*model.InPatientAdmission{{ID: "ip-adm-1"}}, nil)

	w := handlertest.Do(t, r, http.MethodGet, "/api/appointments/in-patients/active?limit=50", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDischargeAdmission(t *testing.T) {
	r, svc := setupTest()
	svc.On("Discharge", mock.Anything, "ip-adm-1").Return(&model.InPatientAdmission{ID: "ip-adm-1", Status: model.AdmissionDischarged}, nil)

	w := handlertest.Do(t, r, http.MethodPost, "/api/appointments/in-patients/ip-adm-1/discharge", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.InPatientAdmission
	handlertest.DecodeData(t, w, &got)
	assert.Equal(t, model.AdmissionDischarged, got.Status)
}
