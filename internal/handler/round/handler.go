package round

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/medication"
	"github.com/jwalitptl/hospital-api/internal/service/round"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service     round.Servicer
	medications medication.InPatientServicer
}

func NewHandler(service round.Servicer, medications medication.InPatientServicer) *Handler {
	return &Handler{service: service, medications: medications}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rounds := r.Group("/rounds")
	{
		rounds.GET("", h.ListRounds)
		rounds.POST("", h.CreateRound)
		rounds.GET("/:id", h.GetRound)
		rounds.PUT("/:id", h.UpdateRound)
		rounds.DELETE("/:id", h.DeleteRound)
		rounds.GET("/:id/medications", h.ListRoundMedications)
	}
}

func (h *Handler) CreateRound(c *gin.Context) {
	var req model.CreateRoundRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	rd, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, rd)
}

func (h *Handler) GetRound(c *gin.Context) {
	rd, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, rd)
}

// ListRounds filters by ?patient_id= first, then ?doctor_id=.
func (h *Handler) ListRounds(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	var rounds []*model.InPatientRound
	switch {
	case c.Query("patient_id") != "":
		rounds, err = h.service.ListByPatient(ctx, c.Query("patient_id"), page)
	case c.Query("doctor_id") != "":
		rounds, err = h.service.ListByDoctor(ctx, c.Query("doctor_id"), page)
	default:
		rounds, err = h.service.List(ctx, page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, rounds)
}

func (h *Handler) UpdateRound(c *gin.Context) {
	var patch model.RoundPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	rd, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, rd)
}

func (h *Handler) DeleteRound(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Round")
}

func (h *Handler) ListRoundMedications(c *gin.Context) {
	meds, err := h.medications.ListByRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, meds)
}
