package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository/postgres"
	userService "github.com/jwalitptl/hospital-api/internal/service/user"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/security"
)

// newCreateAdminCmd bootstraps the first administrator; the register
// endpoint only creates doctors.
func newCreateAdminCmd(configPath *string) *cobra.Command {
	var req model.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			zl, err := logger.NewZap(cfg.Log.Level, cfg.Log.Format, "hospital-api-admin")
			if err != nil {
				return err
			}
			defer zl.Sync() //nolint:errcheck

			db, err := postgres.NewDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := userService.NewService(
				postgres.NewUserRepository(postgres.NewBaseRepository(db, nil)),
				security.NewBcryptHasher(0),
			)

			req.Role = model.RoleAdmin
			ctx := policy.WithActor(cmd.Context(), policy.SystemActor)
			admin, err := svc.Create(ctx, req)
			if err != nil {
				return err
			}
			zl.Info("created admin", zap.String("id", admin.ID), zap.String("email", admin.Email))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password (at least 8 characters)")
	for _, flag := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}
