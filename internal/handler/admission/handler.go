package admission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/admission"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service admission.Servicer
}

func NewHandler(service admission.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admissions := r.Group("/appointments/in-patients")
	{
		admissions.GET("", h.ListAdmissions)
		admissions.GET("/active", h.ListActiveAdmissions)
		admissions.POST("", h.CreateAdmission)
		admissions.GET("/:id", h.GetAdmission)
		admissions.PUT("/:id", h.UpdateAdmission)
		admissions.POST("/:id/discharge", h.DischargeAdmission)
		admissions.DELETE("/:id", h.DeleteAdmission)
	}
}

func (h *Handler) CreateAdmission(c *gin.Context) {
	var req model.CreateAdmissionRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	adm, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, adm)
}

func (h *Handler) GetAdmission(c *gin.Context) {
	adm, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, adm)
}

func (h *Handler) ListAdmissions(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	var admissions []*model.InPatientAdmission
	if patientID := c.Query("patient_id"); patientID != "" {
		admissions, err = h.service.ListByPatient(c.Request.Context(), patientID, page)
	} else {
		admissions, err = h.service.List(c.Request.Context(), page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, admissions)
}

func (h *Handler) ListActiveAdmissions(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	admissions, err := h.service.ListActive(c.Request.Context(), page)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, admissions)
}

func (h *Handler) UpdateAdmission(c *gin.Context) {
	var patch model.AdmissionPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	adm, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, adm)
}

func (h *Handler) DischargeAdmission(c *gin.Context) {
	adm, err := h.service.Discharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, adm)
}

func (h *Handler) DeleteAdmission(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Admission")
}
