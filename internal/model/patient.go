package model

import (
	"time"
)

// Demographics are the personal fields shared by out-patients and in-patients.
type Demographics struct {
	Name                  string  `json:"name" db:"name"`
	Phone                 string  `json:"phone" db:"phone"`
	Email                 string  `json:"email" db:"email"`
	Gender                Gender  `json:"gender" db:"gender"`
	DateOfBirth           Date    `json:"date_of_birth" db:"date_of_birth"`
	BloodGroup            *string `json:"blood_group" db:"blood_group"`
	Address               *string `json:"address" db:"address"`
	Allergies             *string `json:"allergies" db:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name" db:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" db:"emergency_contact_phone"`
	InsuranceProvider     *string `json:"insurance_provider" db:"insurance_provider"`
	InsuranceNumber       *string `json:"insurance_number" db:"insurance_number"`
}

type OutPatient struct {
	ID string `json:"id" db:"id"`
	Demographics
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type InPatient struct {
	ID string `json:"id" db:"id"`
	Demographics
	AdmissionDate      time.Time     `json:"admission_date" db:"admission_date"`
	DischargeDate      *time.Time    `json:"discharge_date" db:"discharge_date"`
	RoomNumber         *string       `json:"room_number" db:"room_number"`
	BedNumber          *string       `json:"bed_number" db:"bed_number"`
	WardType           *WardType     `json:"ward_type" db:"ward_type"`
	AdmittingDoctorID  *string       `json:"admitting_doctor_id" db:"admitting_doctor_id"`
	DischargeDoctorID  *string       `json:"discharge_doctor_id" db:"discharge_doctor_id"`
	AdmissionDiagnosis *string       `json:"admission_diagnosis" db:"admission_diagnosis"`
	DischargeDiagnosis *string       `json:"discharge_diagnosis" db:"discharge_diagnosis"`
	Status             PatientStatus `json:"status" db:"status"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
}

// Discharge moves the patient to discharged. It does not look at the prior
// status, so discharging twice overwrites the discharge fields.
func (p *InPatient) Discharge(diagnosis, doctorID string, now time.Time) {
	p.Status = PatientDischarged
	p.DischargeDate = &now
	p.DischargeDiagnosis = &diagnosis
	p.DischargeDoctorID = &doctorID
}

type DemographicsInput struct {
	Name                  string  `json:"name" binding:"required"`
	Phone                 string  `json:"phone" binding:"required"`
	Email                 string  `json:"email" binding:"required,email"`
	Gender                Gender  `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth           *Date   `json:"date_of_birth" binding:"required"`
	BloodGroup            *string `json:"blood_group" binding:"omitempty,bloodgroup"`
	Address               *string `json:"address"`
	Allergies             *string `json:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	InsuranceProvider     *string `json:"insurance_provider"`
	InsuranceNumber       *string `json:"insurance_number"`
}

func (in DemographicsInput) toDemographics() Demographics {
	d := Demographics{
		Name:                  in.Name,
		Phone:                 in.Phone,
		Email:                 in.Email,
		Gender:                in.Gender,
		BloodGroup:            in.BloodGroup,
		Address:               in.Address,
		Allergies:             in.Allergies,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		InsuranceProvider:     in.InsuranceProvider,
		InsuranceNumber:       in.InsuranceNumber,
	}
	if in.DateOfBirth != nil {
		d.DateOfBirth = *in.DateOfBirth
	}
	return d
}

type CreateOutPatientRequest struct {
	DemographicsInput
}

// NewOutPatient builds an unsaved out-patient with a fresh id.
func NewOutPatient(req CreateOutPatientRequest, now time.Time) *OutPatient {
	return &OutPatient{
		ID:           NewID(PrefixOutPatient),
		Demographics: req.toDemographics(),
		CreatedAt:    now,
	}
}

type CreateInPatientRequest struct {
	DemographicsInput
	AdmissionDate      *time.Time     `json:"admission_date" binding:"required"`
	DischargeDate      *time.Time     `json:"discharge_date"`
	RoomNumber         *string        `json:"room_number"`
	BedNumber          *string        `json:"bed_number"`
	WardType           *WardType      `json:"ward_type" binding:"omitempty,oneof=general semi-private private icu emergency"`
	AdmittingDoctorID  *string        `json:"admitting_doctor_id"`
	DischargeDoctorID  *string        `json:"discharge_doctor_id"`
	AdmissionDiagnosis *string        `json:"admission_diagnosis"`
	DischargeDiagnosis *string        `json:"discharge_diagnosis"`
	Status             *PatientStatus `json:"status" binding:"omitempty,oneof=admitted discharged transferred deceased"`
}

func NewInPatient(req CreateInPatientRequest, now time.Time) *InPatient {
	p := &InPatient{
		ID:                 NewID(PrefixInPatient),
		Demographics:       req.toDemographics(),
		DischargeDate:      req.DischargeDate,
		RoomNumber:         req.RoomNumber,
		BedNumber:          req.BedNumber,
		WardType:           req.WardType,
		AdmittingDoctorID:  req.AdmittingDoctorID,
		DischargeDoctorID:  req.DischargeDoctorID,
		AdmissionDiagnosis: req.AdmissionDiagnosis,
		DischargeDiagnosis: req.DischargeDiagnosis,
		Status:             PatientAdmitted,
		CreatedAt:          now,
	}
	if req.AdmissionDate != nil {
		p.AdmissionDate = *req.AdmissionDate
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	return p
}

type DemographicsPatch struct {
	Name                  *string `json:"name" binding:"omitempty,min=1"`
	Phone                 *string `json:"phone" binding:"omitempty,min=1"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	Gender                *Gender `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth           *Date   `json:"date_of_birth"`
	BloodGroup            *string `json:"blood_group" binding:"omitempty,bloodgroup"`
	Address               *string `json:"address"`
	Allergies             *string `json:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	InsuranceProvider     *string `json:"insurance_provider"`
	InsuranceNumber       *string `json:"insurance_number"`
}

func (p DemographicsPatch) apply(d *Demographics) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Gender != nil {
		d.Gender = *p.Gender
	}
	if p.DateOfBirth != nil {
		d.DateOfBirth = *p.DateOfBirth
	}
	if p.BloodGroup != nil {
		d.BloodGroup = p.BloodGroup
	}
	if p.Address != nil {
		d.Address = p.Address
	}
	if p.Allergies != nil {
		d.Allergies = p.Allergies
	}
	if p.EmergencyContactName != nil {
		d.EmergencyContactName = p.EmergencyContactName
	}
	if p.EmergencyContactPhone != nil {
		d.EmergencyContactPhone = p.EmergencyContactPhone
	}
	if p.InsuranceProvider != nil {
		d.InsuranceProvider = p.InsuranceProvider
	}
	if p.InsuranceNumber != nil {
		d.InsuranceNumber = p.InsuranceNumber
	}
}

type OutPatientPatch struct {
	DemographicsPatch
}

func (p OutPatientPatch) Apply(op *OutPatient) {
	p.DemographicsPatch.apply(&op.Demographics)
}

type InPatientPatch struct {
	DemographicsPatch
	AdmissionDate      *time.Time     `json:"admission_date"`
	DischargeDate      *time.Time     `json:"discharge_date"`
	RoomNumber         *string        `json:"room_number"`
	BedNumber          *string        `json:"bed_number"`
	WardType           *WardType      `json:"ward_type" binding:"omitempty,oneof=general semi-private private icu emergency"`
	AdmittingDoctorID  *string        `json:"admitting_doctor_id"`
	DischargeDoctorID  *string        `json:"discharge_doctor_id"`
	AdmissionDiagnosis *string        `json:"admission_diagnosis"`
	DischargeDiagnosis *string        `json:"discharge_diagnosis"`
	Status             *PatientStatus `json:"status" binding:"omitempty,oneof=admitted discharged transferred deceased"`
}

func (p InPatientPatch) Apply(ip *InPatient) {
	p.DemographicsPatch.apply(&ip.Demographics)
	if p.AdmissionDate != nil {
		ip.AdmissionDate = *p.AdmissionDate
	}
	if p.DischargeDate != nil {
		ip.DischargeDate = p.DischargeDate
	}
	if p.RoomNumber != nil {
		ip.RoomNumber = p.RoomNumber
	}
	if p.BedNumber != nil {
		ip.BedNumber = p.BedNumber
	}
	if p.WardType != nil {
		ip.WardType = p.WardType
	}
	if p.AdmittingDoctorID != nil {
		ip.AdmittingDoctorID = p.AdmittingDoctorID
	}
	if p.DischargeDoctorID != nil {
		ip.DischargeDoctorID = p.DischargeDoctorID
	}
	if p.AdmissionDiagnosis != nil {
		ip.AdmissionDiagnosis = p.AdmissionDiagnosis
	}
	if p.DischargeDiagnosis != nil {
		ip.DischargeDiagnosis = p.DischargeDiagnosis
	}
	if p.Status != nil {
		ip.Status = *p.Status
	}
}

type DischargeInPatientRequest struct {
	DischargeDiagnosis string `json:"discharge_diagnosis" form:"discharge_diagnosis" binding:"required"`
}
