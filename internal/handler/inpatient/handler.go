package inpatient

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/inpatient"
	"github.com/jwalitptl/hospital-api/internal/service/medication"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service     inpatient.Servicer
	medications medication.InPatientServicer
}

func NewHandler(service inpatient.Servicer, medications medication.InPatientServicer) *Handler {
	return &Handler{service: service, medications: medications}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/in-patients")
	{
		patients.GET("", h.ListInPatients)
		patients.GET("/admitted", h.ListAdmitted)
		patients.GET("/ward/:ward_type", h.ListByWard)
		patients.POST("", h.CreateInPatient)
		patients.GET("/:id", h.GetInPatient)
		patients.PUT("/:id", h.UpdateInPatient)
		patients.POST("/:id/discharge", h.DischargeInPatient)
		patients.DELETE("/:id", h.DeleteInPatient)
		patients.GET("/:id/medications/active", h.ListActiveMedications)
	}
}

func (h *Handler) CreateInPatient(c *gin.Context) {
	var req model.CreateInPatientRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	patient, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, patient)
}

func (h *Handler) GetInPatient(c *gin.Context) {
	patient, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patient)
}

func (h *Handler) ListInPatients(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	patients, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patients)
}

func (h *Handler) ListAdmitted(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	patients, err := h.service.ListAdmitted(c.Request.Context(), page)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patients)
}

func (h *Handler) ListByWard(c *gin.Context) {
	ward := model.WardType(c.Param("ward_type"))
	if !ward.Valid() {
		httputil.Fail(c, errors.BadRequest(fmt.Sprintf("unknown ward type %q", ward), nil))
		return
	}
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	patients, err := h.service.ListByWard(c.Request.Context(), ward, page)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patients)
}

func (h *Handler) UpdateInPatient(c *gin.Context) {
	var patch model.InPatientPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	patient, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patient)
}

// DischargeInPatient takes discharge_diagnosis from the JSON body or, for
// clients that post no body, from the query string.
func (h *Handler) DischargeInPatient(c *gin.Context) {
	var req model.DischargeInPatientRequest
	if hasBody(c.Request) {
		if !httputil.BindJSON(c, &req) {
			return
		}
	} else if err := c.ShouldBindQuery(&req); err != nil {
		httputil.Fail(c, errors.BadRequest("discharge_diagnosis is required", err))
		return
	}

	patient, err := h.service.Discharge(c.Request.Context(), c.Param("id"), req.DischargeDiagnosis)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patient)
}

// hasBody is true for chunked uploads too, which report ContentLength -1.
func hasBody(r *http.Request) bool {
	return r.ContentLength != 0 && r.Body != nil && r.Body != http.NoBody
}

func (h *Handler) DeleteInPatient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "In-patient")
}

func (h *Handler) ListActiveMedications(c *gin.Context) {
	meds, err := h.medications.ListActiveByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, meds)
}
