package model

import (
	"time"
)

type OutPatientAppointment struct {
	ID              string            `json:"id" db:"id"`
	PatientID       string            `json:"patient_id" db:"patient_id"`
	Date            time.Time         `json:"date" db:"date"`
	Type            AppointmentType   `json:"type" db:"type"`
	Status          AppointmentStatus `json:"status" db:"status"`
	ReminderSent    bool              `json:"reminder_sent" db:"reminder_sent"`
	Notes           *string           `json:"notes" db:"notes"`
	DoctorID        *string           `json:"doctor_id" db:"doctor_id"`
	AppointmentType VisitType         `json:"appointment_type" db:"appointment_type"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// Cancel sets the status to cancelled whatever it was before.
func (a *OutPatientAppointment) Cancel() {
	a.Status = AppointmentCancelled
}

func (a *OutPatientAppointment) MarkReminded() {
	a.ReminderSent = true
}

type CreateAppointmentRequest struct {
	PatientID       string             `json:"patient_id" binding:"required"`
	Date            *time.Time         `json:"date" binding:"required"`
	Type            AppointmentType    `json:"type" binding:"required,oneof=walk-in phone-call video-call"`
	Status          *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	ReminderSent    bool               `json:"reminder_sent"`
	Notes           *string            `json:"notes"`
	DoctorID        *string            `json:"doctor_id"`
	AppointmentType *VisitType         `json:"appointment_type" binding:"omitempty,oneof=consultation follow-up emergency routine"`
}

func NewOutPatientAppointment(req CreateAppointmentRequest, now time.Time) *OutPatientAppointment {
	a := &OutPatientAppointment{
		ID:              NewID(PrefixAppointment),
		PatientID:       req.PatientID,
		Type:            req.Type,
		Status:          AppointmentScheduled,
		ReminderSent:    req.ReminderSent,
		Notes:           req.Notes,
		DoctorID:        req.DoctorID,
		AppointmentType: VisitConsultation,
		CreatedAt:       now,
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.AppointmentType != nil {
		a.AppointmentType = *req.AppointmentType
	}
	return a
}

type AppointmentPatch struct {
	Date            *time.Time         `json:"date"`
	Type            *AppointmentType   `json:"type" binding:"omitempty,oneof=walk-in phone-call video-call"`
	Status          *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	ReminderSent    *bool              `json:"reminder_sent"`
	Notes           *string            `json:"notes"`
	DoctorID        *string            `json:"doctor_id"`
	AppointmentType *VisitType         `json:"appointment_type" binding:"omitempty,oneof=consultation follow-up emergency routine"`
}

func (p AppointmentPatch) Apply(a *OutPatientAppointment) {
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ReminderSent != nil {
		a.ReminderSent = *p.ReminderSent
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	if p.DoctorID != nil {
		a.DoctorID = p.DoctorID
	}
	if p.AppointmentType != nil {
		a.AppointmentType = *p.AppointmentType
	}
}

// InPatientAdmission is one hospital stay. Its status is tracked apart from
// InPatient.Status.
type InPatientAdmission struct {
	ID                    string          `json:"id" db:"id"`
	PatientID             string          `json:"patient_id" db:"patient_id"`
	AdmissionDate         time.Time       `json:"admission_date" db:"admission_date"`
	ExpectedDischargeDate *time.Time      `json:"expected_discharge_date" db:"expected_discharge_date"`
	ActualDischargeDate   *time.Time      `json:"actual_discharge_date" db:"actual_discharge_date"`
	Status                AdmissionStatus `json:"status" db:"status"`
	AdmissionType         AdmissionType   `json:"admission_type" db:"admission_type"`
	RoomNumber            *string         `json:"room_number" db:"room_number"`
	BedNumber             *string         `json:"bed_number" db:"bed_number"`
	WardType              *WardType       `json:"ward_type" db:"ward_type"`
	AdmittingDoctorID     *string         `json:"admitting_doctor_id" db:"admitting_doctor_id"`
	Notes                 *string         `json:"notes" db:"notes"`
	CreatedAt             time.Time       `json:"created_at" db:"created_at"`
}

// Discharge closes the stay and stamps the actual discharge date.
func (a *InPatientAdmission) Discharge(now time.Time) {
	a.Status = AdmissionDischarged
	a.ActualDischargeDate = &now
}

type CreateAdmissionRequest struct {
	PatientID             string           `json:"patient_id" binding:"required"`
	AdmissionDate         *time.Time       `json:"admission_date" binding:"required"`
	ExpectedDischargeDate *time.Time       `json:"expected_discharge_date"`
	ActualDischargeDate   *time.Time       `json:"actual_discharge_date"`
	Status                *AdmissionStatus `json:"status" binding:"omitempty,oneof=scheduled admitted discharged cancelled"`
	AdmissionType         AdmissionType    `json:"admission_type" binding:"required,oneof=emergency elective transfer"`
	RoomNumber            *string          `json:"room_number"`
	BedNumber             *string          `json:"bed_number"`
	WardType              *WardType        `json:"ward_type" binding:"omitempty,oneof=general semi-private private icu emergency"`
	AdmittingDoctorID     *string          `json:"admitting_doctor_id"`
	Notes                 *string          `json:"notes"`
}

func NewInPatientAdmission(req CreateAdmissionRequest, now time.Time) *InPatientAdmission {
	a := &InPatientAdmission{
		ID:                    NewID(PrefixAdmission),
		PatientID:             req.PatientID,
		ExpectedDischargeDate: req.ExpectedDischargeDate,
		ActualDischargeDate:   req.ActualDischargeDate,
		Status:                AdmissionScheduled,
		AdmissionType:         req.AdmissionType,
		RoomNumber:            req.RoomNumber,
		BedNumber:             req.BedNumber,
		WardType:              req.WardType,
		AdmittingDoctorID:     req.AdmittingDoctorID,
		Notes:                 req.Notes,
		CreatedAt:             now,
	}
	if req.AdmissionDate != nil {
		a.AdmissionDate = *req.AdmissionDate
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	return a
}

type AdmissionPatch struct {
	AdmissionDate         *time.Time       `json:"admission_date"`
	ExpectedDischargeDate *time.Time       `json:"expected_discharge_date"`
	ActualDischargeDate   *time.Time       `json:"actual_discharge_date"`
	Status                *AdmissionStatus `json:"status" binding:"omitempty,oneof=scheduled admitted discharged cancelled"`
	AdmissionType         *AdmissionType   `json:"admission_type" binding:"omitempty,oneof=emergency elective transfer"`
	RoomNumber            *string          `json:"room_number"`
	BedNumber             *string          `json:"bed_number"`
	WardType              *WardType        `json:"ward_type" binding:"omitempty,oneof=general semi-private private icu emergency"`
	AdmittingDoctorID     *string          `json:"admitting_doctor_id"`
	Notes                 *string          `json:"notes"`
}

func (p AdmissionPatch) Apply(a *InPatientAdmission) {
	if p.AdmissionDate != nil {
		a.AdmissionDate = *p.AdmissionDate
	}
	if p.ExpectedDischargeDate != nil {
		a.ExpectedDischargeDate = p.ExpectedDischargeDate
	}
	if p.ActualDischargeDate != nil {
		a.ActualDischargeDate = p.ActualDischargeDate
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.AdmissionType != nil {
		a.AdmissionType = *p.AdmissionType
	}
	if p.RoomNumber != nil {
		a.RoomNumber = p.RoomNumber
	}
	if p.BedNumber != nil {
		a.BedNumber = p.BedNumber
	}
	if p.WardType != nil {
		a.WardType = p.WardType
	}
	if p.AdmittingDoctorID != nil {
		a.AdmittingDoctorID = p.AdmittingDoctorID
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
}
