package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "hospital-api",
		Short:         "Hospital administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ./config.yaml or ./config/config.yaml)")

	serve := newServeCmd(&configPath)
	root.AddCommand(serve, newMigrateCmd(&configPath), newCreateAdminCmd(&configPath))
	root.RunE = serve.RunE
	return root
}
