package outpatient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/outpatient"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service outpatient.Servicer
}

func NewHandler(service outpatient.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/out-patients")
	{
		patients.GET("", h.ListOutPatients)
		patients.POST("", h.CreateOutPatient)
		patients.GET("/:id", h.GetOutPatient)
		patients.PUT("/:id", h.UpdateOutPatient)
		patients.DELETE("/:id", h.DeleteOutPatient)
	}
}

func (h *Handler) CreateOutPatient(c *gin.Context) {
	var req model.CreateOutPatientRequest
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

func (h *Handler) GetOutPatient(c *gin.Context) {
	patient, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patient)
}

// ListOutPatients lists all out-patients, or those seen by ?doctor_id=.
func (h *Handler) ListOutPatients(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	var patients []*model.OutPatient
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		patients, err = h.service.ListByDoctor(c.Request.Context(), doctorID, page)
	} else {
		patients, err = h.service.List(c.Request.Context(), page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, patients)
}

func (h *Handler) UpdateOutPatient(c *gin.Context) {
	var patch model.OutPatientPatch
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

func (h *Handler) DeleteOutPatient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Out-patient")
}
