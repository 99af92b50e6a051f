package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/email"
	"github.com/jwalitptl/hospital-api/internal/handler/admission"
	"github.com/jwalitptl/hospital-api/internal/handler/appointment"
	authHandler "github.com/jwalitptl/hospital-api/internal/handler/auth"
	"github.com/jwalitptl/hospital-api/internal/handler/feedback"
	"github.com/jwalitptl/hospital-api/internal/handler/health"
	"github.com/jwalitptl/hospital-api/internal/handler/inpatient"
	"github.com/jwalitptl/hospital-api/internal/handler/medication"
	"github.com/jwalitptl/hospital-api/internal/handler/outpatient"
	"github.com/jwalitptl/hospital-api/internal/handler/report"
	"github.com/jwalitptl/hospital-api/internal/handler/round"
	"github.com/jwalitptl/hospital-api/internal/handler/user"
	"github.com/jwalitptl/hospital-api/internal/handler/visit"
	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/internal/repository/postgres"
	"github.com/jwalitptl/hospital-api/internal/router"
	admissionService "github.com/jwalitptl/hospital-api/internal/service/admission"
	appointmentService "github.com/jwalitptl/hospital-api/internal/service/appointment"
	authService "github.com/jwalitptl/hospital-api/internal/service/auth"
	feedbackService "github.com/jwalitptl/hospital-api/internal/service/feedback"
	inpatientService "github.com/jwalitptl/hospital-api/internal/service/inpatient"
	medicationService "github.com/jwalitptl/hospital-api/internal/service/medication"
	outpatientService "github.com/jwalitptl/hospital-api/internal/service/outpatient"
	reportService "github.com/jwalitptl/hospital-api/internal/service/report"
	roundService "github.com/jwalitptl/hospital-api/internal/service/round"
	userService "github.com/jwalitptl/hospital-api/internal/service/user"
	visitService "github.com/jwalitptl/hospital-api/internal/service/visit"
	"github.com/jwalitptl/hospital-api/pkg/auth"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
	"github.com/jwalitptl/hospital-api/pkg/security"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("hospital", reg)

	revoker, closeRevoker, err := newRevoker(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeRevoker()

	var mailer email.Service
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPService(cfg.SMTP, m)
	} else {
		log.Warn().Msg("smtp.host not set; appointment reminders are logged, not sent")
		mailer = email.NewLogService()
	}

	// Initialize repositories
	base := postgres.NewBaseRepository(db, m)
	userRepo := postgres.NewUserRepository(base)
	outPatientRepo := postgres.NewOutPatientRepository(base)
	inPatientRepo := postgres.NewInPatientRepository(base)
	visitRepo := postgres.NewVisitRepository(base)
	roundRepo := postgres.NewRoundRepository(base)
	outMedRepo := postgres.NewOutPatientMedicationRepository(base)
	inMedRepo := postgres.NewInPatientMedicationRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)
	admissionRepo := postgres.NewAdmissionRepository(base)
	feedbackRepo := postgres.NewFeedbackRepository(base)

	// Initialize services
	hasher := security.NewBcryptHasher(0)
	authSvc := authService.NewService(userRepo, auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry), revoker, hasher)
	userSvc := userService.NewService(userRepo, hasher)
	outPatientSvc := outpatientService.NewService(outPatientRepo)
	inPatientSvc := inpatientService.NewService(inPatientRepo)
	visitSvc := visitService.NewService(visitRepo)
	roundSvc := roundService.NewService(roundRepo)
	outMedSvc := medicationService.NewOutPatientService(outMedRepo)
	inMedSvc := medicationService.NewInPatientService(inMedRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, outPatientRepo, mailer)
	admissionSvc := admissionService.NewService(admissionRepo)
	feedbackSvc := feedbackService.NewService(feedbackRepo)
	reportSvc := reportService.NewService(inPatientRepo)

	r := router.NewRouter(
		middleware.NewAuthMiddleware(authSvc),
		router.Handlers{
			Auth:   authHandler.NewHandler(authSvc),
			Health: health.NewHandler(db, reg),
			Protected: []router.Handler{
				user.NewHandler(userSvc),
				outpatient.NewHandler(outPatientSvc),
				inpatient.NewHandler(inPatientSvc, inMedSvc),
				visit.NewHandler(visitSvc, outMedSvc),
				round.NewHandler(roundSvc, inMedSvc),
				medication.NewHandler(outMedSvc, inMedSvc),
				appointment.NewHandler(appointmentSvc),
				admission.NewHandler(admissionSvc),
				feedback.NewHandler(feedbackSvc),
				report.NewHandler(reportSvc),
			},
		},
		m,
		router.ConfigFromServer(cfg.Server),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}

// newRevoker uses Redis when a URL is configured and an in-process store
// otherwise.
func newRevoker(ctx context.Context, cfg config.RedisConfig) (auth.Revoker, func(), error) {
	if cfg.URL == "" {
		return auth.NewMemoryRevoker(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return auth.NewRedisRevoker(client), func() { client.Close() }, nil
}
