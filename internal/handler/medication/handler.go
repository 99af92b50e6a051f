package medication

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/medication"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

// Handler serves prescriptions for both patient kinds under /medications.
type Handler struct {
	outPatient medication.OutPatientServicer
	inPatient  medication.InPatientServicer
}

func NewHandler(outPatient medication.OutPatientServicer, inPatient medication.InPatientServicer) *Handler {
	return &Handler{outPatient: outPatient, inPatient: inPatient}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	meds := r.Group("/medications")

	out := meds.Group("/out-patients")
	{
		out.POST("", h.CreateOutPatientMedication)
		out.GET("/:id", h.GetOutPatientMedication)
		out.PUT("/:id", h.UpdateOutPatientMedication)
		out.DELETE("/:id", h.DeleteOutPatientMedication)
	}

	in := meds.Group("/in-patients")
	{
		in.POST("", h.CreateInPatientMedication)
		in.GET("/:id", h.GetInPatientMedication)
		in.PUT("/:id", h.UpdateInPatientMedication)
		in.POST("/:id/discontinue", h.DiscontinueInPatientMedication)
		in.DELETE("/:id", h.DeleteInPatientMedication)
	}
}

func (h *Handler) CreateOutPatientMedication(c *gin.Context) {
	var req model.CreateOutPatientMedicationRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	med, err := h.outPatient.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, med)
}

func (h *Handler) GetOutPatientMedication(c *gin.Context) {
	med, err := h.outPatient.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, med)
}

func (h *Handler) UpdateOutPatientMedication(c *gin.Context) {
	var patch model.OutPatientMedicationPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	med, err := h.outPatient.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, med)
}

func (h *Handler) DeleteOutPatientMedication(c *gin.Context) {
	if err := h.outPatient.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Medication")
}

func (h *Handler) CreateInPatientMedication(c *gin.Context) {
	var req model.CreateInPatientMedicationRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	med, err := h.inPatient.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, med)
}

func (h *Handler) GetInPatientMedication(c *gin.Context) {
	med, err := h.inPatient.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, med)
}

func (h *Handler) UpdateInPatientMedication(c *gin.Context) {
	var patch model.InPatientMedicationPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	med, err := h.inPatient.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, med)
}

func (h *Handler) DiscontinueInPatientMedication(c *gin.Context) {
	med, err := h.inPatient.Discontinue(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, med)
}

func (h *Handler) DeleteInPatientMedication(c *gin.Context) {
	if err := h.inPatient.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Medication")
}
