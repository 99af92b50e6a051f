package round

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateRoundRequest) (*model.InPatientRound, error)
	Get(ctx context.Context, id string) (*model.InPatientRound, error)
	List(ctx context.Context, page model.Page) ([]*model.InPatientRound, error)
	ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientRound, error)
	ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.InPatientRound, error)
	Update(ctx context.Context, id string, patch model.RoundPatch) (*model.InPatientRound, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.InPatientRound]
	repo repository.RoundRepository
	now  func() time.Time
}

func NewService(repo repository.RoundRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.InPatientRound](repo, policy.ResourceRound, "Round"),
		repo: repo,
		now:  time.Now,
	}
}

// Create attributes the encounter to the acting user unless doctor_id is given.
func (s *Service) Create(ctx context.Context, req model.CreateRoundRequest) (*model.InPatientRound, error) {
	actor, err := s.Authorize(ctx, policy.OpCreate, "")
	if err != nil {
		return nil, err
	}
	r := model.NewInPatientRound(req, s.now())
	if r.DoctorID == nil {
		doctorID := actor.ID
		r.DoctorID = &doctorID
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, s.Translate(err, "create")
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, patch model.RoundPatch) (*model.InPatientRound, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientRound, error) {
	return s.Query(ctx, func() ([]*model.InPatientRound, error) {
		return s.repo.ListByPatient(ctx, patientID, page)
	})
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.InPatientRound, error) {
	return s.Query(ctx, func() ([]*model.InPatientRound, error) {
		return s.repo.ListByDoctor(ctx, doctorID, page)
	})
}
