package visit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/medication"
	"github.com/jwalitptl/hospital-api/internal/service/visit"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service     visit.Servicer
	medications medication.OutPatientServicer
}

func NewHandler(service visit.Servicer, medications medication.OutPatientServicer) *Handler {
	return &Handler{service: service, medications: medications}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/visits")
	{
		visits.GET("", h.ListVisits)
		visits.POST("", h.CreateVisit)
		visits.GET("/:id", h.GetVisit)
		visits.PUT("/:id", h.UpdateVisit)
		visits.DELETE("/:id", h.DeleteVisit)
		visits.GET("/:id/medications", h.ListVisitMedications)
	}
}

func (h *Handler) CreateVisit(c *gin.Context) {
	var req model.CreateVisitRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, v)
}

func (h *Handler) GetVisit(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, v)
}

// ListVisits filters by ?patient_id= first, then ?doctor_id=.
func (h *Handler) ListVisits(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	var visits []*model.OutPatientVisit
	switch {
	case c.Query("patient_id") != "":
		visits, err = h.service.ListByPatient(ctx, c.Query("patient_id"), page)
	case c.Query("doctor_id") != "":
		visits, err = h.service.ListByDoctor(ctx, c.Query("doctor_id"), page)
	default:
		visits, err = h.service.List(ctx, page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, visits)
}

func (h *Handler) UpdateVisit(c *gin.Context) {
	var patch model.VisitPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	v, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, v)
}

func (h *Handler) DeleteVisit(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Visit")
}

func (h *Handler) ListVisitMedications(c *gin.Context) {
	meds, err := h.medications.ListByVisit(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, meds)
}
