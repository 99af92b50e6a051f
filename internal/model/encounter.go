package model

import (
	"time"
)

// OutPatientVisit is a clinical encounter with an out-patient.
type OutPatientVisit struct {
	ID              string     `json:"id" db:"id"`
	PatientID       string     `json:"patient_id" db:"patient_id"`
	Date            time.Time  `json:"date" db:"date"`
	ChiefComplaints string     `json:"chief_complaints" db:"chief_complaints"`
	Diagnosis       string     `json:"diagnosis" db:"diagnosis"`
	Notes           *string    `json:"notes" db:"notes"`
	FollowUpDate    *time.Time `json:"follow_up_date" db:"follow_up_date"`
	DoctorID        *string    `json:"doctor_id" db:"doctor_id"`
	VisitType       VisitType  `json:"visit_type" db:"visit_type"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type CreateVisitRequest struct {
	PatientID       string     `json:"patient_id" binding:"required"`
	Date            *time.Time `json:"date" binding:"required"`
	ChiefComplaints string     `json:"chief_complaints" binding:"required"`
	Diagnosis       string     `json:"diagnosis" binding:"required"`
	Notes           *string    `json:"notes"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	DoctorID        *string    `json:"doctor_id"`
	VisitType       *VisitType `json:"visit_type" binding:"omitempty,oneof=consultation follow-up emergency routine"`
}

func NewOutPatientVisit(req CreateVisitRequest, now time.Time) *OutPatientVisit {
	v := &OutPatientVisit{
		ID:              NewID(PrefixOutPatientVisit),
		PatientID:       req.PatientID,
		ChiefComplaints: req.ChiefComplaints,
		Diagnosis:       req.Diagnosis,
		Notes:           req.Notes,
		FollowUpDate:    req.FollowUpDate,
		DoctorID:        req.DoctorID,
		VisitType:       VisitConsultation,
		CreatedAt:       now,
	}
	if req.Date != nil {
		v.Date = *req.Date
	}
	if req.VisitType != nil {
		v.VisitType = *req.VisitType
	}
	return v
}

type VisitPatch struct {
	Date            *time.Time `json:"date"`
	ChiefComplaints *string    `json:"chief_complaints"`
	Diagnosis       *string    `json:"diagnosis"`
	Notes           *string    `json:"notes"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	DoctorID        *string    `json:"doctor_id"`
	VisitType       *VisitType `json:"visit_type" binding:"omitempty,oneof=consultation follow-up emergency routine"`
}

func (p VisitPatch) Apply(v *OutPatientVisit) {
	if p.Date != nil {
		v.Date = *p.Date
	}
	if p.ChiefComplaints != nil {
		v.ChiefComplaints = *p.ChiefComplaints
	}
	if p.Diagnosis != nil {
		v.Diagnosis = *p.Diagnosis
	}
	if p.Notes != nil {
		v.Notes = p.Notes
	}
	if p.FollowUpDate != nil {
		v.FollowUpDate = p.FollowUpDate
	}
	if p.DoctorID != nil {
		v.DoctorID = p.DoctorID
	}
	if p.VisitType != nil {
		v.VisitType = *p.VisitType
	}
}

// InPatientRound is a ward round on an admitted patient.
type InPatientRound struct {
	ID              string    `json:"id" db:"id"`
	PatientID       string    `json:"patient_id" db:"patient_id"`
	Date            time.Time `json:"date" db:"date"`
	ChiefComplaints string    `json:"chief_complaints" db:"chief_complaints"`
	Diagnosis       string    `json:"diagnosis" db:"diagnosis"`
	Notes           *string   `json:"notes" db:"notes"`
	DoctorID        *string   `json:"doctor_id" db:"doctor_id"`
	RoundType       RoundType `json:"round_type" db:"round_type"`
	VitalSigns      *string   `json:"vital_signs" db:"vital_signs"`
	TreatmentPlan   *string   `json:"treatment_plan" db:"treatment_plan"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CreateRoundRequest struct {
	PatientID       string     `json:"patient_id" binding:"required"`
	Date            *time.Time `json:"date" binding:"required"`
	ChiefComplaints string     `json:"chief_complaints" binding:"required"`
	Diagnosis       string     `json:"diagnosis" binding:"required"`
	Notes           *string    `json:"notes"`
	DoctorID        *string    `json:"doctor_id"`
	RoundType       *RoundType `json:"round_type" binding:"omitempty,oneof=morning evening emergency discharge"`
	VitalSigns      *string    `json:"vital_signs" binding:"omitempty,json"`
	TreatmentPlan   *string    `json:"treatment_plan"`
}

func NewInPatientRound(req CreateRoundRequest, now time.Time) *InPatientRound {
	r := &InPatientRound{
		ID:              NewID(PrefixInPatientRound),
		PatientID:       req.PatientID,
		ChiefComplaints: req.ChiefComplaints,
		Diagnosis:       req.Diagnosis,
		Notes:           req.Notes,
		DoctorID:        req.DoctorID,
		RoundType:       RoundMorning,
		VitalSigns:      req.VitalSigns,
		TreatmentPlan:   req.TreatmentPlan,
		CreatedAt:       now,
	}
	if req.Date != nil {
		r.Date = *req.Date
	}
	if req.RoundType != nil {
		r.RoundType = *req.RoundType
	}
	return r
}

type RoundPatch struct {
	Date            *time.Time `json:"date"`
	ChiefComplaints *string    `json:"chief_complaints"`
	Diagnosis       *string    `json:"diagnosis"`
	Notes           *string    `json:"notes"`
	DoctorID        *string    `json:"doctor_id"`
	RoundType       *RoundType `json:"round_type" binding:"omitempty,oneof=morning evening emergency discharge"`
	VitalSigns      *string    `json:"vital_signs" binding:"omitempty,json"`
	TreatmentPlan   *string    `json:"treatment_plan"`
}

func (p RoundPatch) Apply(r *InPatientRound) {
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.ChiefComplaints != nil {
		r.ChiefComplaints = *p.ChiefComplaints
	}
	if p.Diagnosis != nil {
		r.Diagnosis = *p.Diagnosis
	}
	if p.Notes != nil {
		r.Notes = p.Notes
	}
	if p.DoctorID != nil {
		r.DoctorID = p.DoctorID
	}
	if p.RoundType != nil {
		r.RoundType = *p.RoundType
	}
	if p.VitalSigns != nil {
		r.VitalSigns = p.VitalSigns
	}
	if p.TreatmentPlan != nil {
		r.TreatmentPlan = p.TreatmentPlan
	}
}
