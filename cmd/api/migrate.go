package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/repository/postgres"
	"github.com/jwalitptl/hospital-api/pkg/logger"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			zl, err := logger.NewZap(cfg.Log.Level, cfg.Log.Format, "hospital-api-migrate")
			if err != nil {
				return err
			}
			defer zl.Sync() //nolint:errcheck

			db, err := postgres.NewDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := postgres.NewMigrator(db, zl)
			if status {
				list, err := migrator.Status(cmd.Context())
				if err != nil {
					return err
				}
				for _, st := range list {
					state := "pending"
					if st.Applied {
						state = "applied"
					}
					zl.Info("migration", zap.Int("version", st.Version), zap.String("name", st.Name), zap.String("state", state))
				}
				return nil
			}

			n, err := migrator.Up(cmd.Context())
			if err != nil {
				return err
			}
			zl.Info("migrations complete", zap.Int("applied", n))
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "list applied and pending migrations without applying")
	return cmd
}
