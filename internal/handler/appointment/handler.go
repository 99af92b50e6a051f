package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/appointment"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	service appointment.Servicer
}

func NewHandler(service appointment.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments/out-patients")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/today", h.ListTodaysAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
		appointments.POST("/:id/remind", h.SendReminder)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	appt, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appt, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appt)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	var appts []*model.OutPatientAppointment
	switch {
	case c.Query("patient_id") != "":
		appts, err = h.service.ListByPatient(ctx, c.Query("patient_id"), page)
	case c.Query("doctor_id") != "":
		appts, err = h.service.ListByDoctor(ctx, c.Query("doctor_id"), page)
	default:
		appts, err = h.service.List(ctx, page)
	}
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appts)
}

func (h *Handler) ListTodaysAppointments(c *gin.Context) {
	appts, err := h.service.Today(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appts)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var patch model.AppointmentPatch
	if !httputil.BindJSON(c, &patch) {
		return
	}

	appt, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appt)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	appt, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appt)
}

func (h *Handler) SendReminder(c *gin.Context) {
	appt, err := h.service.SendReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondDeleted(c, "Appointment")
}
