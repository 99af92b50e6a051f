package email

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/circuitbreaker"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

const kindAppointmentReminder = "appointment_reminder"

type Service interface {
	SendAppointmentReminder(ctx context.Context, patient *model.OutPatient, appointment *model.OutPatientAppointment) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpService struct {
	dialer  dialer
	from    string
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// NewSMTPService delivers mail through cfg's relay. Repeated delivery
// failures open a circuit breaker so requests fail fast while the relay is down.
func NewSMTPService(cfg config.SMTPConfig, m *metrics.Metrics) Service {
	return newSMTPService(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), cfg.From, m)
}

func newSMTPService(d dialer, from string, m *metrics.Metrics) *smtpService {
	return &smtpService{
		dialer: d,
		from:   from,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "smtp",
			MaxFailures: 3,
			Timeout:     time.Minute,
		}),
		metrics: m,
	}
}

func (s *smtpService) SendAppointmentReminder(ctx context.Context, patient *model.OutPatient, appointment *model.OutPatientAppointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", msg.FormatAddress(patient.Email, patient.Name))
	msg.SetHeader("Subject", "Appointment reminder")
	msg.SetBody("text/plain", reminderBody(patient, appointment))

	err := s.breaker.Execute(func() error {
		return s.dialer.DialAndSend(msg)
	})
	s.metrics.ObserveEmail(kindAppointmentReminder, err)
	if err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}

func reminderBody(patient *model.OutPatient, appointment *model.OutPatientAppointment) string {
	return fmt.Sprintf(
		"Dear %s,\n\nThis is a reminder of your %s appointment (%s) on %s.\n\nAppointment reference: %s\n",
		patient.Name,
		appointment.AppointmentType,
		appointment.Type,
		appointment.Date.Format("Monday, 02 January 2006 at 15:04 MST"),
		appointment.ID,
	)
}

type logService struct{}

// NewLogService is used when no SMTP relay is configured: reminders are
// written to the log instead of being delivered.
func NewLogService() Service {
	return logService{}
}

func (logService) SendAppointmentReminder(_ context.Context, patient *model.OutPatient, appointment *model.OutPatientAppointment) error {
	log.Info().
		Str("appointment_id", appointment.ID).
		Str("patient_id", patient.ID).
		Str("to", patient.Email).
		Msg("SMTP disabled, reminder not delivered")
	return nil
}
