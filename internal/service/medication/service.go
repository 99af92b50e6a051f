package medication

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type OutPatientServicer interface {
	Create(ctx context.Context, req model.CreateOutPatientMedicationRequest) (*model.OutPatientMedication, error)
	Get(ctx context.Context, id string) (*model.OutPatientMedication, error)
	ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error)
	Update(ctx context.Context, id string, patch model.OutPatientMedicationPatch) (*model.OutPatientMedication, error)
	Delete(ctx context.Context, id string) error
}

type InPatientServicer interface {
	Create(ctx context.Context, req model.CreateInPatientMedicationRequest) (*model.InPatientMedication, error)
	Get(ctx context.Context, id string) (*model.InPatientMedication, error)
	ListByRound(ctx context.Context, roundID string) ([]*model.InPatientMedication, error)
	ListActiveByPatient(ctx context.Context, patientID string) ([]*model.InPatientMedication, error)
	Update(ctx context.Context, id string, patch model.InPatientMedicationPatch) (*model.InPatientMedication, error)
	Discontinue(ctx context.Context, id string) (*model.InPatientMedication, error)
	Delete(ctx context.Context, id string) error
}

// OutPatientService manages prescriptions written during visits.
type OutPatientService struct {
	service.CRUD[model.OutPatientMedication]
	repo repository.OutPatientMedicationRepository
	now  func() time.Time
}

func NewOutPatientService(repo repository.OutPatientMedicationRepository) *OutPatientService {
	return &OutPatientService{
		CRUD: service.NewCRUD[model.OutPatientMedication](repo, policy.ResourceOutPatientMedication, "Medication"),
		repo: repo,
		now:  time.Now,
	}
}

// Create fails with not found when the visit does not exist.
func (s *OutPatientService) Create(ctx context.Context, req model.CreateOutPatientMedicationRequest) (*model.OutPatientMedication, error) {
	return s.Insert(ctx, model.NewOutPatientMedication(req, s.now()))
}

func (s *OutPatientService) Update(ctx context.Context, id string, patch model.OutPatientMedicationPatch) (*model.OutPatientMedication, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

func (s *OutPatientService) ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error) {
	return s.Query(ctx, func() ([]*model.OutPatientMedication, error) {
		return s.repo.ListByVisit(ctx, visitID)
	})
}

// InPatientService manages drug orders attached to ward rounds.
type InPatientService struct {
	service.CRUD[model.InPatientMedication]
	repo repository.InPatientMedicationRepository
	now  func() time.Time
}

func NewInPatientService(repo repository.InPatientMedicationRepository) *InPatientService {
	return &InPatientService{
		CRUD: service.NewCRUD[model.InPatientMedication](repo, policy.ResourceInPatientMedication, "Medication"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *InPatientService) Create(ctx context.Context, req model.CreateInPatientMedicationRequest) (*model.InPatientMedication, error) {
	return s.Insert(ctx, model.NewInPatientMedication(req, s.now()))
}

func (s *InPatientService) Update(ctx context.Context, id string, patch model.InPatientMedicationPatch) (*model.InPatientMedication, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

// Discontinue stops the order and stamps its end date.
func (s *InPatientService) Discontinue(ctx context.Context, id string) (*model.InPatientMedication, error) {
	now := s.now()
	return s.Mutate(ctx, policy.OpTransition, id, func(m *model.InPatientMedication) {
		m.Discontinue(now)
	})
}

func (s *InPatientService) ListByRound(ctx context.Context, roundID string) ([]*model.InPatientMedication, error) {
	return s.Query(ctx, func() ([]*model.InPatientMedication, error) {
		return s.repo.ListByRound(ctx, roundID)
	})
}

func (s *InPatientService) ListActiveByPatient(ctx context.Context, patientID string) ([]*model.InPatientMedication, error) {
	return s.Query(ctx, func() ([]*model.InPatientMedication, error) {
		return s.repo.ListActiveByPatient(ctx, patientID)
	})
}
