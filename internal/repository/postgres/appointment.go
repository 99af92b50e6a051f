package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

type appointmentRepository struct {
	table[model.OutPatientAppointment]
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{
		table: newTable[model.OutPatientAppointment](base, "out_patient_appointments",
			"id", "patient_id", "date", "type", "status", "reminder_sent",
			"notes", "doctor_id", "appointment_type", "created_at"),
	}
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	query := r.selectSQL() + ` WHERE patient_id = $1 ORDER BY date ASC`
	return r.selectPage(ctx, r.op("list_by_patient"), query, page, patientID)
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	query := r.selectSQL() + ` WHERE doctor_id = $1 ORDER BY date ASC`
	return r.selectPage(ctx, r.op("list_by_doctor"), query, page, doctorID)
}

// ListForDay returns the appointments falling on day's calendar date in
// day's location.
func (r *appointmentRepository) ListForDay(ctx context.Context, day time.Time) ([]*model.OutPatientAppointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	query := r.selectSQL() + ` WHERE date >= $1 AND date < $2 ORDER BY date ASC`
	return r.selectAll(ctx, r.op("list_for_day"), query, start, end)
}

type admissionRepository struct {
	table[model.InPatientAdmission]
}

func NewAdmissionRepository(base BaseRepository) repository.AdmissionRepository {
	return &admissionRepository{
		table: newTable[model.InPatientAdmission](base, "in_patient_admissions",
			"id", "patient_id", "admission_date", "expected_discharge_date",
			"actual_discharge_date", "status", "admission_type", "room_number",
			"bed_number", "ward_type", "admitting_doctor_id", "notes", "created_at"),
	}
}

func (r *admissionRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error) {
	query := r.selectSQL() + ` WHERE patient_id = $1 ORDER BY admission_date DESC`
	return r.selectPage(ctx, r.op("list_by_patient"), query, page, patientID)
}

func (r *admissionRepository) ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error) {
	query := r.selectSQL() + ` WHERE status = $1 ORDER BY admission_date ASC`
	return r.selectPage(ctx, r.op("list_active"), query, page, model.AdmissionAdmitted)
}
