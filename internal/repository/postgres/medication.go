package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

type outPatientMedicationRepository struct {
	table[model.OutPatientMedication]
}

func NewOutPatientMedicationRepository(base BaseRepository) repository.OutPatientMedicationRepository {
	return &outPatientMedicationRepository{
		table: newTable[model.OutPatientMedication](base, "out_patient_medications",
			"id", "visit_id", "patient_id", "name", "dosage", "frequency",
			"duration", "prescription_date", "created_at"),
	}
}

// Create copies patient_id from the parent visit so the prescription is
// removed with either the visit or the patient.
func (r *outPatientMedicationRepository) Create(ctx context.Context, m *model.OutPatientMedication) error {
	return r.WithTx(ctx, r.op("create"), func(tx *sqlx.Tx) error {
		var patientID string
		err := tx.GetContext(ctx, &patientID, `SELECT patient_id FROM out_patient_visits WHERE id = $1`, m.VisitID)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrInvalidReference
		}
		if err != nil {
			return err
		}
		m.PatientID = patientID
		return r.insertTx(ctx, tx, m)
	})
}

func (r *outPatientMedicationRepository) ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error) {
	query := r.selectSQL() + ` WHERE visit_id = $1 ORDER BY prescription_date ASC`
	return r.selectAll(ctx, r.op("list_by_visit"), query, visitID)
}

type inPatientMedicationRepository struct {
	table[model.InPatientMedication]
}

func NewInPatientMedicationRepository(base BaseRepository) repository.InPatientMedicationRepository {
	return &inPatientMedicationRepository{
		table: newTable[model.InPatientMedication](base, "in_patient_medications",
			"id", "round_id", "name", "dosage", "frequency", "duration",
			"route", "start_date", "end_date", "status", "created_at"),
	}
}

func (r *inPatientMedicationRepository) ListByRound(ctx context.Context, roundID string) ([]*model.InPatientMedication, error) {
	query := r.selectSQL() + ` WHERE round_id = $1 ORDER BY created_at ASC`
	return r.selectAll(ctx, r.op("list_by_round"), query, roundID)
}

func (r *inPatientMedicationRepository) ListActiveByPatient(ctx context.Context, patientID string) ([]*model.InPatientMedication, error) {
	query := `SELECT ` + r.qualified("m") + `
		FROM in_patient_medications m
		JOIN in_patient_rounds rd ON rd.id = m.round_id
		WHERE rd.patient_id = $1 AND m.status = $2
		ORDER BY m.created_at ASC`
	return r.selectAll(ctx, r.op("list_active_by_patient"), query, patientID, model.MedicationActive)
}
