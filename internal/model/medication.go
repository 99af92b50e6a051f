package model

import (
	"time"
)

// OutPatientMedication is a prescription written during a visit.
type OutPatientMedication struct {
	ID               string    `json:"id" db:"id"`
	VisitID          string    `json:"visit_id" db:"visit_id"`
	PatientID        string    `json:"patient_id" db:"patient_id"`
	Name             string    `json:"name" db:"name"`
	Dosage           string    `json:"dosage" db:"dosage"`
	Frequency        string    `json:"frequency" db:"frequency"`
	Duration         string    `json:"duration" db:"duration"`
	PrescriptionDate time.Time `json:"prescription_date" db:"prescription_date"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type CreateOutPatientMedicationRequest struct {
	VisitID   string `json:"visit_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
}

// NewOutPatientMedication leaves PatientID empty; the store fills it from
// the parent visit.
func NewOutPatientMedication(req CreateOutPatientMedicationRequest, now time.Time) *OutPatientMedication {
	return &OutPatientMedication{
		ID:               NewID(PrefixOutPatientMedication),
		VisitID:          req.VisitID,
		Name:             req.Name,
		Dosage:           req.Dosage,
		Frequency:        req.Frequency,
		Duration:         req.Duration,
		PrescriptionDate: now,
		CreatedAt:        now,
	}
}

type OutPatientMedicationPatch struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	Duration  *string `json:"duration"`
}

func (p OutPatientMedicationPatch) Apply(m *OutPatientMedication) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Frequency != nil {
		m.Frequency = *p.Frequency
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
}

// InPatientMedication is a drug order attached to a ward round.
type InPatientMedication struct {
	ID        string           `json:"id" db:"id"`
	RoundID   string           `json:"round_id" db:"round_id"`
	Name      string           `json:"name" db:"name"`
	Dosage    string           `json:"dosage" db:"dosage"`
	Frequency string           `json:"frequency" db:"frequency"`
	Duration  string           `json:"duration" db:"duration"`
	Route     MedicationRoute  `json:"route" db:"route"`
	StartDate *time.Time       `json:"start_date" db:"start_date"`
	EndDate   *time.Time       `json:"end_date" db:"end_date"`
	Status    MedicationStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// Discontinue stops the order and stamps the end date.
func (m *InPatientMedication) Discontinue(now time.Time) {
	m.Status = MedicationDiscontinued
	m.EndDate = &now
}

type CreateInPatientMedicationRequest struct {
	RoundID   string            `json:"round_id" binding:"required"`
	Name      string            `json:"name" binding:"required"`
	Dosage    string            `json:"dosage" binding:"required"`
	Frequency string            `json:"frequency" binding:"required"`
	Duration  string            `json:"duration" binding:"required"`
	Route     *MedicationRoute  `json:"route" binding:"omitempty,oneof=oral iv im sc topical inhalation sublingual"`
	StartDate *time.Time        `json:"start_date"`
	EndDate   *time.Time        `json:"end_date"`
	Status    *MedicationStatus `json:"status" binding:"omitempty,oneof=active discontinued completed"`
}

func NewInPatientMedication(req CreateInPatientMedicationRequest, now time.Time) *InPatientMedication {
	m := &InPatientMedication{
		ID:        NewID(PrefixInPatientMedication),
		RoundID:   req.RoundID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Duration:  req.Duration,
		Route:     RouteOral,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    MedicationActive,
		CreatedAt: now,
	}
	if req.Route != nil {
		m.Route = *req.Route
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	return m
}

type InPatientMedicationPatch struct {
	Name      *string           `json:"name" binding:"omitempty,min=1"`
	Dosage    *string           `json:"dosage"`
	Frequency *string           `json:"frequency"`
	Duration  *string           `json:"duration"`
	Route     *MedicationRoute  `json:"route" binding:"omitempty,oneof=oral iv im sc topical inhalation sublingual"`
	StartDate *time.Time        `json:"start_date"`
	EndDate   *time.Time        `json:"end_date"`
	Status    *MedicationStatus `json:"status" binding:"omitempty,oneof=active discontinued completed"`
}

func (p InPatientMedicationPatch) Apply(m *InPatientMedication) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Frequency != nil {
		m.Frequency = *p.Frequency
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Route != nil {
		m.Route = *p.Route
	}
	if p.StartDate != nil {
		m.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = p.EndDate
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}
