package feedback

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/feedback"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service feedback.Servicer
}

func NewHandler(service feedback.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	fb := r.Group("/feedback")
	{
		fb.GET("", h.ListFeedback)
		fb.POST("", h.CreateFeedback)
		fb.GET("/:id", h.GetFeedback)
		fb.PUT("/:id", h.UpdateFeedback)
		fb.DELETE("/:id", h.DeleteFeedback)
	}
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var req model.CreateFeedbackRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, f)
}

func (h *Handler) GetFeedback(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, f)
}

// ListFeedback filters by ?patient_id= first, then ?rating=.
func (h *Handler) ListFeedback(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	var items []*model.Feedback
	switch {
	case c.Query("patient_id") != "":
		items, err = h.service.ListByPatient(ctx, c.Query("patient_id"), page)
	case c.Query("rating") != "":
		rating := model.Rating(c.Query("rating"))
		if !rating.Valid() {
			httputil.Fail(c, errors.BadRequest(fmt.Sprintf("unknown rating %q", rating), nil))
			return
		}
		items, err = h.service.ListByRating(ctx, rating, page)
	default:
		items, err = h.service.List(ctx, page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, items)
}

func (h *Handler) UpdateFeedback(c *gin.Context) {
	var patch model.FeedbackPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, f)
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Feedback")
}
