package postgres

import (
	"context"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

var demographicColumns = []string{
	"name", "phone", "email", "gender", "date_of_birth", "blood_group",
	"address", "allergies", "emergency_contact_name", "emergency_contact_phone",
	"insurance_provider", "insurance_number",
}

func withDemographics(extra ...string) []string {
	cols := append([]string{"id"}, demographicColumns...)
	return append(cols, extra...)
}

type outPatientRepository struct {
	table[model.OutPatient]
}

func NewOutPatientRepository(base BaseRepository) repository.OutPatientRepository {
	return &outPatientRepository{
		table: newTable[model.OutPatient](base, "out_patients", withDemographics("created_at")...),
	}
}

// ListByDoctor returns the distinct patients that have at least one visit
// with the doctor.
func (r *outPatientRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatient, error) {
	query := `SELECT DISTINCT ` + r.qualified("p") + `
		FROM out_patients p
		JOIN out_patient_visits v ON v.patient_id = p.id
		WHERE v.doctor_id = $1
		ORDER BY p.created_at ASC`
	return r.selectPage(ctx, r.op("list_by_doctor"), query, page, doctorID)
}

type inPatientRepository struct {
	table[model.InPatient]
}

func NewInPatientRepository(base BaseRepository) repository.InPatientRepository {
	return &inPatientRepository{
		table: newTable[model.InPatient](base, "in_patients", withDemographics(
			"admission_date", "discharge_date", "room_number", "bed_number",
			"ward_type", "admitting_doctor_id", "discharge_doctor_id",
			"admission_diagnosis", "discharge_diagnosis", "status", "created_at",
		)...),
	}
}

func (r *inPatientRepository) ListAdmitted(ctx context.Context, page model.Page) ([]*model.InPatient, error) {
	query := r.selectSQL() + ` WHERE status = $1 ORDER BY admission_date ASC`
	return r.selectPage(ctx, r.op("list_admitted"), query, page, model.PatientAdmitted)
}

func (r *inPatientRepository) ListByWard(ctx context.Context, ward model.WardType, page model.Page) ([]*model.InPatient, error) {
	query := r.selectSQL() + ` WHERE ward_type = $1 AND status = $2 ORDER BY admission_date ASC`
	return r.selectPage(ctx, r.op("list_by_ward"), query, page, ward, model.PatientAdmitted)
}
