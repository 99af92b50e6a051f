package model

import (
	"time"
)

// Feedback is a patient's rating of an out-patient appointment.
type Feedback struct {
	ID            string           `json:"id" db:"id"`
	PatientID     string           `json:"patient_id" db:"patient_id"`
	PatientName   string           `json:"patient_name" db:"patient_name"`
	AppointmentID string           `json:"appointment_id" db:"appointment_id"`
	VisitDate     Date             `json:"visit_date" db:"visit_date"`
	Rating        Rating           `json:"rating" db:"rating"`
	Comments      string           `json:"comments" db:"comments"`
	SubmittedDate Date             `json:"submitted_date" db:"submitted_date"`
	Category      FeedbackCategory `json:"category" db:"category"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

type CreateFeedbackRequest struct {
	PatientID     string           `json:"patient_id" binding:"required"`
	PatientName   string           `json:"patient_name" binding:"required"`
	AppointmentID string           `json:"appointment_id" binding:"required"`
	VisitDate     *Date            `json:"visit_date" binding:"required"`
	Rating        Rating           `json:"rating" binding:"required,oneof=happy satisfied not-satisfied"`
	Comments      string           `json:"comments" binding:"required"`
	SubmittedDate *Date            `json:"submitted_date" binding:"required"`
	Category      FeedbackCategory `json:"category" binding:"required,oneof=service wait-time treatment facilities overall"`
}

func NewFeedback(req CreateFeedbackRequest, now time.Time) *Feedback {
	f := &Feedback{
		ID:            NewID(PrefixFeedback),
		PatientID:     req.PatientID,
		PatientName:   req.PatientName,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comments:      req.Comments,
		Category:      req.Category,
		CreatedAt:     now,
	}
	if req.VisitDate != nil {
		f.VisitDate = *req.VisitDate
	}
	if req.SubmittedDate != nil {
		f.SubmittedDate = *req.SubmittedDate
	}
	return f
}

type FeedbackPatch struct {
	PatientName   *string           `json:"patient_name" binding:"omitempty,min=1"`
	VisitDate     *Date             `json:"visit_date"`
	Rating        *Rating           `json:"rating" binding:"omitempty,oneof=happy satisfied not-satisfied"`
	Comments      *string           `json:"comments"`
	SubmittedDate *Date             `json:"submitted_date"`
	Category      *FeedbackCategory `json:"category" binding:"omitempty,oneof=service wait-time treatment facilities overall"`
}

func (p FeedbackPatch) Apply(f *Feedback) {
	if p.PatientName != nil {
		f.PatientName = *p.PatientName
	}
	if p.VisitDate != nil {
		f.VisitDate = *p.VisitDate
	}
	if p.Rating != nil {
		f.Rating = *p.Rating
	}
	if p.Comments != nil {
		f.Comments = *p.Comments
	}
	if p.SubmittedDate != nil {
		f.SubmittedDate = *p.SubmittedDate
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
}
