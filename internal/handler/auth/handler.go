package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/service/auth"
	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

type Handler struct {
	svc auth.Servicer
}

func NewHandler(svc auth.Servicer) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts token issue and sign-up on public and the
// session routes on protected; both groups are expected at /api.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	open := public.Group("/auth")
	{
		open.POST("/token", h.Login)
		open.POST("/register", h.Register)
	}

	session := protected.Group("/auth")
	{
		session.GET("/me", h.Me)
		session.POST("/logout", h.Logout)
	}
}

// Login accepts a JSON body or an OAuth2 password form with username and
// password fields.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if c.ContentType() == gin.MIMEPOSTForm || c.ContentType() == gin.MIMEMultipartPOSTForm {
		req.Email = c.PostForm("username")
		req.Password = c.PostForm("password")
		if req.Email == "" || req.Password == "" {
			httputil.Fail(c, errors.BadRequest("username and password are required", nil))
			return
		}
	} else if !httputil.BindJSON(c, &req) {
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, token)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !httputil.BindJSON(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, user)
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		httputil.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &httputil.Response{
		Status:  httputil.StatusSuccess,
		Message: "Successfully logged out",
	})
}
