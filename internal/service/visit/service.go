package visit

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateVisitRequest) (*model.OutPatientVisit, error)
	Get(ctx context.Context, id string) (*model.OutPatientVisit, error)
	List(ctx context.Context, page model.Page) ([]*model.OutPatientVisit, error)
	ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error)
	ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error)
	Update(ctx context.Context, id string, patch model.VisitPatch) (*model.OutPatientVisit, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.OutPatientVisit]
	repo repository.VisitRepository
	now  func() time.Time
}

func NewService(repo repository.VisitRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.OutPatientVisit](repo, policy.ResourceVisit, "Visit"),
		repo: repo,
		now:  time.Now,
	}
}

// Create attributes the encounter to the acting user unless doctor_id is given.
func (s *Service) Create(ctx context.Context, req model.CreateVisitRequest) (*model.OutPatientVisit, error) {
	actor, err := s.Authorize(ctx, policy.OpCreate, "")
	if err != nil {
		return nil, err
	}
	v := model.NewOutPatientVisit(req, s.now())
	if v.DoctorID == nil {
		doctorID := actor.ID
		v.DoctorID = &doctorID
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, s.Translate(err, "create")
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id string, patch model.VisitPatch) (*model.OutPatientVisit, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return s.Query(ctx, func() ([]*model.OutPatientVisit, error) {
		return s.repo.ListByPatient(ctx, patientID, page)
	})
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return s.Query(ctx, func() ([]*model.OutPatientVisit, error) {
		return s.repo.ListByDoctor(ctx, doctorID, page)
	})
}
