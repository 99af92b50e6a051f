package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

// Handler mounts routes that require an authenticated actor.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// SessionHandler splits its routes between the public and protected groups.
type SessionHandler interface {
	RegisterRoutes(public, protected *gin.RouterGroup)
}

// ProbeHandler mounts health probes on the engine root and on /api.
type ProbeHandler interface {
	RegisterRoutes(root *gin.Engine, api *gin.RouterGroup)
}

type Handlers struct {
	Auth      SessionHandler
	Health    ProbeHandler
	Protected []Handler
}

type RouterConfig struct {
	Mode           string
	RequestTimeout time.Duration
	AllowedOrigins []string
	MaxBodyBytes   int64
	RateLimit      config.RateLimitConfig
}

// ConfigFromServer maps the server section of the application config.
func ConfigFromServer(cfg config.ServerConfig) RouterConfig {
	return RouterConfig{
		Mode:           cfg.Mode,
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimit:      cfg.RateLimit,
	}
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	handlers Handlers,
	m *metrics.Metrics,
	config RouterConfig,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine := gin.New()

	// Metrics and Logger sit outside ErrorHandler so they see the final status.
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(m),
		middleware.ErrorHandler(),
		middleware.Validation(middleware.DefaultValidationConfig()),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
		middleware.CORS(config.AllowedOrigins),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.SizeLimit(config.MaxBodyBytes),
	)

	if config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(config.RateLimit.RequestsPerSecond),
			Burst: config.RateLimit.Burst,
		})
		engine.Use(limiter.RateLimit())
	}

	return &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
	}
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())

	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(r.engine, api)
	}
	if r.handlers.Auth != nil {
		r.handlers.Auth.RegisterRoutes(api, protected)
	}
	for _, h := range r.handlers.Protected {
		h.RegisterRoutes(protected)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
