package outpatient

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateOutPatientRequest) (*model.OutPatient, error)
	Get(ctx context.Context, id string) (*model.OutPatient, error)
	List(ctx context.Context, page model.Page) ([]*model.OutPatient, error)
	ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatient, error)
	Update(ctx context.Context, id string, patch model.OutPatientPatch) (*model.OutPatient, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.OutPatient]
	repo repository.OutPatientRepository
	now  func() time.Time
}

func NewService(repo repository.OutPatientRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.OutPatient](repo, policy.ResourceOutPatient, "Out-patient"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateOutPatientRequest) (*model.OutPatient, error) {
	return s.Insert(ctx, model.NewOutPatient(req, s.now()))
}

func (s *Service) Update(ctx context.Context, id string, patch model.OutPatientPatch) (*model.OutPatient, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

// ListByDoctor returns the patients the doctor has seen at least once.
func (s *Service) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatient, error) {
	return s.Query(ctx, func() ([]*model.OutPatient, error) {
		return s.repo.ListByDoctor(ctx, doctorID, page)
	})
}
