package visit

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
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) one(args mock.Arguments) (*model.OutPatientVisit, error) {
	v, _ := args.Get(0).(*model.OutPatientVisit)
	return v, args.Error(1)
}

func (m *mockService) many(args mock.Arguments) ([]*model.OutPatientVisit, error) {
	v, _ := args.Get(0).([]*model.OutPatientVisit)
	return v, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req model.CreateVisitRequest) (*model.OutPatientVisit, error) {
	return m.one(m.Called(ctx, req))
}

func (m *mockService) Get(ctx context.Context, id string) (*model.OutPatientVisit, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, page model.Page) ([]*model.OutPatientVisit, error) {
	return m.many(m.Called(ctx, page))
}

func (m *mockService) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return m.many(m.Called(ctx, patientID, page))
}

func (m *mockService) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return m.many(m.Called(ctx, doctorID, page))
}

func (m *mockService) Update(ctx context.Context, id string, patch model.VisitPatch) (*model.OutPatientVisit, error) {
	return m.one(m.Called(ctx, id, patch))
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMedications struct {
	mock.Mock
}

func (m *mockMedications) Create(ctx context.Context, req model.CreateOutPatientMedicationRequest) (*model.OutPatientMedication, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.OutPatientMedication)
	return v, args.Error(1)
}

func (m *mockMedications) Get(ctx context.Context, id string) (*model.OutPatientMedication, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.OutPatientMedication)
	return v, args.Error(1)
}

func (m *mockMedications) ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error) {
	args := m.Called(ctx, visitID)
	v, _ := args.Get(0).([]*model.OutPatientMedication)
	return v, args.Error(1)
}

func (m *mockMedications) Update(ctx context.Context, id string, patch model.OutPatientMedicationPatch) (*model.OutPatientMedication, error) {
	args := m.Called(ctx, id, patch)
	v, _ := args.Get(0).(*model.OutPatientMedication)
	return v, args.Error(1)
}

func (m *mockMedications) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupTest() (*gin.Engine, *mockService, *mockMedications) {
	svc := new(mockService)
	meds := new(mockMedications)
	return handlertest.NewRouter(handlertest.Doctor, NewHandler(svc, meds).RegisterRoutes), svc, meds
}

func TestListVisitsFilters(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		method string
		args   []interface{}
	}{
		{"all", "", "List", []interface{}{mock.Anything, model.DefaultPage()}},
		{"by patient", "?patient_id=op-1", "ListByPatient", []interface{}{mock.Anything, "op-1", model.DefaultPage()}},
		{"by doctor", "?doctor_id=usr-2", "ListByDoctor", []interface{}{mock.Anything, "usr-2", model.DefaultPage()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc, _ := setupTest()
			svc.On(tt.method, tt.args...).Return([]*model.OutPatientVisit{{ID: "opv-1"}}, nil)

			w := handlertest.Do(t, r, http.MethodGet, "/api/visits"+tt.query, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateVisitUnknownPatient(t *testing.T) {
	r, svc, _ := setupTest()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.NotFound("Referenced record", nil))

	w := handlertest.Do(t, r, http.MethodPost, "/api/visits", map[string]interface{}{
		"patient_id":       "op-404",
		"date":             "2024-05-01T09:00:00Z",
		"chief_complaints": "cough",
		"diagnosis":        "cold",
	})

	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	assert.Equal(t, "Referenced record not found", handlertest.Decode(t, w).Message)
}

func TestListVisitMedications(t *testing.T) {
	r, _, meds := setupTest()
	meds.On("ListByVisit", mock.Anything, "opv-1").Return([]*model.OutPatientMedication{{ID: "opm-1"}, {ID: "opm-2"}}, nil)

	w := handlertest.Do(t, r, http.MethodGet, "/api/visits/opv-1/medications", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []model.OutPatientMedication
	handlertest.DecodeData(t, w, &got)
	assert.Len(t, got, 2)
}
