package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/hospital-api/internal/email"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/internal/service"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

type Servicer interface {
	Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.OutPatientAppointment, error)
	Get(ctx context.Context, id string) (*model.OutPatientAppointment, error)
	List(ctx context.Context, page model.Page) ([]*model.OutPatientAppointment, error)
	ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error)
	ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error)
	Today(ctx context.Context) ([]*model.OutPatientAppointment, error)
	Update(ctx context.Context, id string, patch model.AppointmentPatch) (*model.OutPatientAppointment, error)
	Cancel(ctx context.Context, id string) (*model.OutPatientAppointment, error)
	SendReminder(ctx context.Context, id string) (*model.OutPatientAppointment, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	service.CRUD[model.OutPatientAppointment]
	repo     repository.AppointmentRepository
	patients repository.OutPatientRepository
	mailer   email.Service
	now      func() time.Time
}

func NewService(repo repository.AppointmentRepository, patients repository.OutPatientRepository, mailer email.Service) *Service {
	return &Service{
		CRUD:     service.NewCRUD[model.OutPatientAppointment](repo, policy.ResourceAppointment, "Appointment"),
		repo:     repo,
		patients: patients,
		mailer:   mailer,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.OutPatientAppointment, error) {
	return s.Insert(ctx, model.NewOutPatientAppointment(req, s.now()))
}

func (s *Service) Update(ctx context.Context, id string, patch model.AppointmentPatch) (*model.OutPatientAppointment, error) {
	return s.Mutate(ctx, policy.OpUpdate, id, patch.Apply)
}

// Cancel marks the appointment cancelled whatever its current status.
func (s *Service) Cancel(ctx context.Context, id string) (*model.OutPatientAppointment, error) {
	return s.Mutate(ctx, policy.OpTransition, id, func(a *model.OutPatientAppointment) {
		a.Cancel()
	})
}

// Today lists the appointments on the current UTC calendar day.
func (s *Service) Today(ctx context.Context) ([]*model.OutPatientAppointment, error) {
	return s.Query(ctx, func() ([]*model.OutPatientAppointment, error) {
		return s.repo.ListForDay(ctx, s.now().UTC())
	})
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return s.Query(ctx, func() ([]*model.OutPatientAppointment, error) {
		return s.repo.ListByPatient(ctx, patientID, page)
	})
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string, page model.Page) ([]*model.OutPatientAppointment, error) {
	return s.Query(ctx, func() ([]*model.OutPatientAppointment, error) {
		return s.repo.ListByDoctor(ctx, doctorID, page)
	})
}

// SendReminder emails the patient and sets reminder_sent. The flag is only
// set once delivery succeeded.
func (s *Service) SendReminder(ctx context.Context, id string) (*model.OutPatientAppointment, error) {
	if _, err := s.Authorize(ctx, policy.OpTransition, id); err != nil {
		return nil, err
	}

	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.Translate(err, "get")
	}
	patient, err := s.patients.Get(ctx, appt.PatientID)
	if err != nil {
		return nil, service.Translate("Out-patient", "get", err)
	}
	if strings.TrimSpace(patient.Email) == "" {
		return nil, errors.BadRequest("Patient has no email address", nil)
	}

	if err := s.mailer.SendAppointmentReminder(ctx, patient, appt); err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to send reminder for appointment %s: %w", id, err))
	}

	updated, err := s.repo.Update(ctx, id, func(a *model.OutPatientAppointment) {
		a.MarkReminded()
	})
	if err != nil {
		return nil, s.Translate(err, "update")
	}
	return updated, nil
}
