package postgres

import (
	"context"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

type visitRepository struct {
	table[model.OutPatientVisit]
}

func NewVisitRepository(base BaseRepository) repository.VisitRepository {
	return &visitRepository{
		table: newTable[model.OutPatientVisit](base, "out_patient_visits",
			"id", "patient_id", "date", "chief_complaints", "diagnosis", "notes",
			"follow_up_date", "doctor_id", "visit_type", "created_at"),
	}
}

func (r *visitRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error) {
	query := r.selectSQL() + ` WHERE patient_id = $1 ORDER BY date DESC`
	return r.selectPage(ctx, r.op("list_by_patient"), query, page, patientID)
}

func (r *visitRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error) {
	query := r.selectSQL() + ` WHERE doctor_id = $1 ORDER BY date DESC`
	return r.selectPage(ctx, r.op("list_by_doctor"), query, page, doctorID)
}

type roundRepository struct {
	table[model.InPatientRound]
}

func NewRoundRepository(base BaseRepository) repository.RoundRepository {
	return &roundRepository{
		table: newTable[model.InPatientRound](base, "in_patient_rounds",
			"id", "patient_id", "date", "chief_complaints", "diagnosis", "notes",
			"doctor_id", "round_type", "vital_signs", "treatment_plan", "created_at"),
	}
}

func (r *roundRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientRound, error) {
	query := r.selectSQL() + ` WHERE patient_id = $1 ORDER BY date DESC`
	return r.selectPage(ctx, r.op("list_by_patient"), query, page, patientID)
}

func (r *roundRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.InPatientRound, error) {
	query := r.selectSQL() + ` WHERE doctor_id = $1 ORDER BY date DESC`
	return r.selectPage(ctx, r.op("list_by_doctor"), query, page, doctorID)
}
