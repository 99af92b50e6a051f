package postgres

import (
	"context"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

type feedbackRepository struct {
	table[model.Feedback]
}

func NewFeedbackRepository(base BaseRepository) repository.FeedbackRepository {
	return &feedbackRepository{
		table: newTable[model.Feedback](base, "feedback",
			"id", "patient_id", "patient_name", "appointment_id", "visit_date",
			"rating", "comments", "submitted_date", "category", "created_at"),
	}
}

func (r *feedbackRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.Feedback, error) {
	query := r.selectSQL() + ` WHERE patient_id = $1 ORDER BY submitted_date DESC`
	return r.selectPage(ctx, r.op("list_by_patient"), query, page, patientID)
}

func (r *feedbackRepository) ListByRating(ctx context.Context, rating model.Rating, page model.Page) ([]*model.Feedback, error) {
	query := r.selectSQL() + ` WHERE rating = $1 ORDER BY submitted_date DESC`
	return r.selectPage(ctx, r.op("list_by_rating"), query, page, rating)
}
