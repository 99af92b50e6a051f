package model

type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type WardType string

const (
	WardGeneral     WardType = "general"
	WardSemiPrivate WardType = "semi-private"
	WardPrivate     WardType = "private"
	WardICU         WardType = "icu"
	WardEmergency   WardType = "emergency"
)

func (w WardType) Valid() bool {
	switch w {
	case WardGeneral, WardSemiPrivate, WardPrivate, WardICU, WardEmergency:
		return true
	}
	return false
}

// PatientStatus is the live state of an in-patient.
type PatientStatus string

const (
	PatientAdmitted    PatientStatus = "admitted"
	PatientDischarged  PatientStatus = "discharged"
	PatientTransferred PatientStatus = "transferred"
	PatientDeceased    PatientStatus = "deceased"
)

type VisitType string

const (
	VisitConsultation VisitType = "consultation"
	VisitFollowUp     VisitType = "follow-up"
	VisitEmergency    VisitType = "emergency"
	VisitRoutine      VisitType = "routine"
)

type RoundType string

const (
	RoundMorning   RoundType = "morning"
	RoundEvening   RoundType = "evening"
	RoundEmergency RoundType = "emergency"
	RoundDischarge RoundType = "discharge"
)

type MedicationRoute string

const (
	RouteOral       MedicationRoute = "oral"
	RouteIV         MedicationRoute = "iv"
	RouteIM         MedicationRoute = "im"
	RouteSC         MedicationRoute = "sc"
	RouteTopical    MedicationRoute = "topical"
	RouteInhalation MedicationRoute = "inhalation"
	RouteSublingual MedicationRoute = "sublingual"
)

type MedicationStatus string

const (
	MedicationActive       MedicationStatus = "active"
	MedicationDiscontinued MedicationStatus = "discontinued"
	MedicationCompleted    MedicationStatus = "completed"
)

// AppointmentType is the channel of an out-patient appointment.
type AppointmentType string

const (
	AppointmentWalkIn    AppointmentType = "walk-in"
	AppointmentPhoneCall AppointmentType = "phone-call"
	AppointmentVideoCall AppointmentType = "video-call"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

type AdmissionType string

const (
	AdmissionEmergency AdmissionType = "emergency"
	AdmissionElective  AdmissionType = "elective"
	AdmissionTransfer  AdmissionType = "transfer"
)

type AdmissionStatus string

const (
	AdmissionScheduled  AdmissionStatus = "scheduled"
	AdmissionAdmitted   AdmissionStatus = "admitted"
	AdmissionDischarged AdmissionStatus = "discharged"
	AdmissionCancelled  AdmissionStatus = "cancelled"
)

type Rating string

const (
	RatingHappy        Rating = "happy"
	RatingSatisfied    Rating = "satisfied"
	RatingNotSatisfied Rating = "not-satisfied"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingHappy, RatingSatisfied, RatingNotSatisfied:
		return true
	}
	return false
}

type FeedbackCategory string

const (
	CategoryService    FeedbackCategory = "service"
	CategoryWaitTime   FeedbackCategory = "wait-time"
	CategoryTreatment  FeedbackCategory = "treatment"
	CategoryFacilities FeedbackCategory = "facilities"
	CategoryOverall    FeedbackCategory = "overall"
)
