// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// Store mocks the record operations shared by every repository. Update
// applies the mutation to the record returned by the expectation.
type Store[T any] struct {
	mock.Mock
}

func (m *Store[T]) Create(ctx context.Context, v *T) error {
	return m.MethodCalled("Create", ctx, v).Error(0)
}

func (m *Store[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.MethodCalled("Get", ctx, id)
	return one[T](args)
}

func (m *Store[T]) List(ctx context.Context, page model.Page) ([]*T, error) {
	args := m.MethodCalled("List", ctx, page)
	return many[T](args)
}

func (m *Store[T]) Update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	args := m.MethodCalled("Update", ctx, id)
	v, err := one[T](args)
	if err == nil && v != nil {
		mutate(v)
	}
	return v, err
}

func (m *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Bool(0), args.Error(1)
}

func one[T any](args mock.Arguments) (*T, error) {
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func many[T any](args mock.Arguments) ([]*T, error) {
	v, _ := args.Get(0).([]*T)
	return v, args.Error(1)
}

type UserRepository struct {
	Store[model.User]
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return one[model.User](m.MethodCalled("GetByEmail", ctx, email))
}

type OutPatientRepository struct {
	Store[model.OutPatient]
}

func (m *OutPatientRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatient, error) {
	return many[model.OutPatient](m.MethodCalled("ListByDoctor", ctx, doctorID, page))
}

type InPatientRepository struct {
	Store[model.InPatient]
}

func (m *InPatientRepository) ListAdmitted(ctx context.Context, page model.Page) ([]*model.InPatient, error) {
	return many[model.InPatient](m.MethodCalled("ListAdmitted", ctx, page))
}

func (m *InPatientRepository) ListByWard(ctx context.Context, ward model.WardType, page model.Page) ([]*model.InPatient, error) {
	return many[model.InPatient](m.MethodCalled("ListByWard", ctx, ward, page))
}

type VisitRepository struct {
	Store[model.OutPatientVisit]
}

func (m *VisitRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return many[model.OutPatientVisit](m.MethodCalled("ListByPatient", ctx, patientID, page))
}

func (m *VisitRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error) {
	return many[model.OutPatientVisit](m.MethodCalled("ListByDoctor", ctx, doctorID, page))
}

type RoundRepository struct {
	Store[model.InPatientRound]
}

func (m *RoundRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientRound, error) {
	return many[model.InPatientRound](m.MethodCalled("ListByPatient", ctx, patientID, page))
}

func (m *RoundRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.InPatientRound, error) {
	return many[model.InPatientRound](m.MethodCalled("ListByDoctor", ctx, doctorID, page))
}

type OutPatientMedicationRepository struct {
	Store[model.OutPatientMedication]
}

func (m *OutPatientMedicationRepository) ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error) {
	return many[model.OutPatientMedication](m.MethodCalled("ListByVisit", ctx, visitID))
}

type InPatientMedicationRepository struct {
	Store[model.InPatientMedication]
}

func (m *InPatientMedicationRepository) ListByRound(ctx context.Context, roundID string) ([]*model.InPatientMedication, error) {
	return many[model.InPatientMedication](m.MethodCalled("ListByRound", ctx, roundID))
}

func (m *InPatientMedicationRepository) ListActiveByPatient(ctx context.Context, patientID string) ([]*model.InPatientMedication, error) {
	return many[model.InPatientMedication](m.MethodCalled("ListActiveByPatient", ctx, patientID))
}

type AppointmentRepository struct {
	Store[model.OutPatientAppointment]
}

func (m *AppointmentRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return many[model.OutPatientAppointment](m.MethodCalled("ListByPatient", ctx, patientID, page))
}

func (m *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return many[model.OutPatientAppointment](m.MethodCalled("ListByDoctor", ctx, doctorID, page))
}

func (m *AppointmentRepository) ListForDay(ctx context.Context, day time.Time) ([]*model.OutPatientAppointment, error) {
	return many[model.OutPatientAppointment](m.MethodCalled("ListForDay", ctx, day))
}

type AdmissionRepository struct {
	Store[model.InPatientAdmission]
}

func (m *AdmissionRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error) {
	return many[model.InPatientAdmission](m.MethodCalled("ListByPatient", ctx, patientID, page))
}

func (m *AdmissionRepository) ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error) {
	return many[model.InPatientAdmission](m.MethodCalled("ListActive", ctx, page))
}

type FeedbackRepository struct {
	Store[model.Feedback]
}

func (m *FeedbackRepository) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.Feedback, error) {
	return many[model.Feedback](m.MethodCalled("ListByPatient", ctx, patientID, page))
}

func (m *FeedbackRepository) ListByRating(ctx context.Context, rating model.Rating, page model.Page) ([]*model.Feedback, error) {
	return many[model.Feedback](m.MethodCalled("ListByRating", ctx, rating, page))
}
