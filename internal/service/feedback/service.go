package feedback

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateFeedbackRequest) (*model.Feedback, error)
	Get(ctx context.Context, id string) (*model.Feedback, error)
	List(ctx context.Context, page model.Page) ([]*model.Feedback, error)
	ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.Feedback, error)
	ListByRating(ctx context.Context, rating model.Rating, page model.Page) ([]*model.Feedback, error)
	Update(ctx context.Context, id string, patch model.FeedbackPatch) (*model.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.Feedback]
	repo repository.FeedbackRepository
	now  func() time.Time
}

func NewService(repo repository.FeedbackRepository) *Service {
	return &Service{
		CRUD: service.NewCRUD[model.Feedback](repo, policy.ResourceFeedback, "Feedback"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateFeedbackRequest) (*model.Feedback, error) {
	return s.Insert(ctx, model.NewFeedback(req, s.now()))
}

func (s *Service) Update(ctx context.Context, id string, patch model.FeedbackPatch) (*model.Feedback, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.Feedback, error) {
	return s.Query(ctx, func() ([]*model.Feedback, error) {
		return s.repo.ListByPatient(ctx, patientID, page)
	})
}

func (s *Service) ListByRating(ctx context.Context, rating model.Rating, page model.Page) ([]*model.Feedback, error) {
	return s.Query(ctx, func() ([]*model.Feedback, error) {
		return s.repo.ListByRating(ctx, rating, page)
	})
}
