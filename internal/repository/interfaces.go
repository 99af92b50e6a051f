package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
)

var (
	// ErrNotFound is returned when an id does not resolve to a row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidReference is returned when a foreign key points at no row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		List(ctx context.Context, page model.Page) ([]*model.User, error)
		Update(ctx context.Context, id string, mutate func(*model.User)) (*model.User, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	OutPatientRepository interface {
		Create(ctx context.Context, patient *model.OutPatient) error
		Get(ctx context.Context, id string) (*model.OutPatient, error)
		List(ctx context.Context, page model.Page) ([]*model.OutPatient, error)
		ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatient, error)
		Update(ctx context.Context, id string, mutate func(*model.OutPatient)) (*model.OutPatient, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	InPatientRepository interface {
		Create(ctx context.Context, patient *model.InPatient) error
		Get(ctx context.Context, id string) (*model.InPatient, error)
		List(ctx context.Context, page model.Page) ([]*model.InPatient, error)
		ListAdmitted(ctx context.Context, page model.Page) ([]*model.InPatient, error)
		ListByWard(ctx context.Context, ward model.WardType, page model.Page) ([]*model.InPatient, error)
		Update(ctx context.Context, id string, mutate func(*model.InPatient)) (*model.InPatient, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	VisitRepository interface {
		Create(ctx context.Context, visit *model.OutPatientVisit) error
		Get(ctx context.Context, id string) (*model.OutPatientVisit, error)
		List(ctx context.Context, page model.Page) ([]*model.OutPatientVisit, error)
		ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientVisit, error)
		ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientVisit, error)
		Update(ctx context.Context, id string, mutate func(*model.OutPatientVisit)) (*model.OutPatientVisit, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	RoundRepository interface {
		Create(ctx context.Context, round *model.InPatientRound) error
		Get(ctx context.Context, id string) (*model.InPatientRound, error)
		List(ctx context.Context, page model.Page) ([]*model.InPatientRound, error)
		ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientRound, error)
		ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.InPatientRound, error)
		Update(ctx context.Context, id string, mutate func(*model.InPatientRound)) (*model.InPatientRound, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	OutPatientMedicationRepository interface {
		Create(ctx context.Context, medication *model.OutPatientMedication) error
		Get(ctx context.Context, id string) (*model.OutPatientMedication, error)
		List(ctx context.Context, page model.Page) ([]*model.OutPatientMedication, error)
		ListByVisit(ctx context.Context, visitID string) ([]*model.OutPatientMedication, error)
		Update(ctx context.Context, id string, mutate func(*model.OutPatientMedication)) (*model.OutPatientMedication, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	InPatientMedicationRepository interface {
		Create(ctx context.Context, medication *model.InPatientMedication) error
		Get(ctx context.Context, id string) (*model.InPatientMedication, error)
		List(ctx context.Context, page model.Page) ([]*model.InPatientMedication, error)
		ListByRound(ctx context.Context, roundID string) ([]*model.InPatientMedication, error)
		ListActiveByPatient(ctx context.Context, patientID string) ([]*model.InPatientMedication, error)
		Update(ctx context.Context, id string, mutate func(*model.InPatientMedication)) (*model.InPatientMedication, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.OutPatientAppointment) error
		Get(ctx context.Context, id string) (*model.OutPatientAppointment, error)
		List(ctx context.Context, page model.Page) ([]*model.OutPatientAppointment, error)
		ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error)
		ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error)
		ListForDay(ctx context.Context, day time.Time) ([]*model.OutPatientAppointment, error)
		Update(ctx context.Context, id string, mutate func(*model.OutPatientAppointment)) (*model.OutPatientAppointment, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	AdmissionRepository interface {
		Create(ctx context.Context, admission *model.InPatientAdmission) error
		Get(ctx context.Context, id string) (*model.InPatientAdmission, error)
		List(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error)
		ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.InPatientAdmission, error)
		ListActive(ctx context.Context, page model.Page) ([]*model.InPatientAdmission, error)
		Update(ctx context.Context, id string, mutate func(*model.InPatientAdmission)) (*model.InPatientAdmission, error)
		Delete(ctx context.Context, id string) (bool, error)
	}

	FeedbackRepository interface {
		Create(ctx context.Context, feedback *model.Feedback) error
		Get(ctx context.Context, id string) (*model.Feedback, error)
		List(ctx context.Context, page model.Page) ([]*model.Feedback, error)
		ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.Feedback, error)
		ListByRating(ctx context.Context, rating model.Rating, page model.Page) ([]*model.Feedback, error)
		Update(ctx context.Context, id string, mutate func(*model.Feedback)) (*model.Feedback, error)
		Delete(ctx context.Context, id string) (bool, error)
	}
)
