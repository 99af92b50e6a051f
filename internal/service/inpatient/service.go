package inpatient

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateInPatientRequest) (*model.InPatient, error)
	Get(ctx context.Context, id string) (*model.InPatient, error)
	List(ctx context.Context, page model.Page) ([]*model.InPatient, error)
	ListAdmitted(ctx context.Context, page model.Page) ([]*model.InPatient, error)
	ListByWard(ctx context.Context, ward model.WardType, page model.Page) ([]*model.InPatient, error)
	Update(ctx context.Context, id string, patch model.InPatientPatch) (*model.InPatient, error)
	Discharge(ctx context.Context, id, diagnosis string) (*model.InPatient, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.InPatient]
	repo repository.InPatientRepository
	now  func() time.Time
}

func NewService(repo repository.InPatientRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.InPatient](repo, policy.ResourceInPatient, "In-patient"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateInPatientRequest) (*model.InPatient, error) {
	return s.Insert(ctx, model.NewInPatient(req, s.now()))
}

func (s *Service) Update(ctx context.Context, id string, patch model.InPatientPatch) (*model.InPatient, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

// Discharge records the acting user as discharging doctor. Discharging an
// already discharged patient overwrites the previous discharge.
func (s *Service) Discharge(ctx context.Context, id, diagnosis string) (*model.InPatient, error) {
	actor, err := s.Authorize(ctx, policy.OpTransition, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	patient, err := s.repo.Update(ctx, id, func(p *model.InPatient) {
		p.Discharge(diagnosis, actor.ID, now)
	})
	if err != nil {
		return nil, s.Translate(err, "discharge")
	}
	return patient, nil
}

func (s *Service) ListAdmitted(ctx context.Context, page model.Page) ([]*model.InPatient, error) {
	return s.Query(ctx, func() ([]*model.InPatient, error) {
		return s.repo.ListAdmitted(ctx, page)
	})
}

func (s *Service) ListByWard(ctx context.Context, ward model.WardType, page model.Page) ([]*model.InPatient, error) {
	return s.Query(ctx, func() ([]*model.InPatient, error) {
		return s.repo.ListByWard(ctx, ward, page)
	})
}
