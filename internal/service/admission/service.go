package admission

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateAdmissionRequest) (*model.InPatientAdmission, error)
	Get(ctx context.Context, id string) (*model.InPatientAdmission, error)
	List(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error)
	ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error)
	ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error)
	Update(ctx context.Context, id string, patch model.AdmissionPatch) (*model.InPatientAdmission, error)
	Discharge(ctx context.Context, id string) (*model.InPatientAdmission, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.InPatientAdmission]
	repo repository.AdmissionRepository
	now  func() time.Time
}

func NewService(repo repository.AdmissionRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.InPatientAdmission](repo, policy.ResourceAdmission, "Admission"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateAdmissionRequest) (*model.InPatientAdmission, error) {
	return s.Insert(ctx, model.NewInPatientAdmission(req, s.now()))
}

func (s *Service) Update(ctx context.Context, id string, patch model.AdmissionPatch) (*model.InPatientAdmission, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

// Discharge closes the stay. The patient's own status is left untouched.
func (s *Service) Discharge(ctx context.Context, id string) (*model.InPatientAdmission, error) {
	now := s.now()
	return s.Mutate(ctx, policy.OpTransition, id, func(a *model.InPatientAdmission) {
		a.Discharge(now)
	})
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error) {
	return s.Query(ctx, func() ([]*model.InPatientAdmission, error) {
		return s.repo.ListByPatient(ctx, patientID, page)
	})
}

func (s *Service) ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error) {
	return s.Query(ctx, func() ([]*model.InPatientAdmission, error) {
		return s.repo.ListActive(ctx, page)
	})
}
