package main

import (
	"errors"

	"github.com/spf13/cobra"

	"localdir/internal/platform/config"
	"localdir/internal/platform/logger"
	"localdir/internal/platform/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the moderation and audit tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		log := logger.New(cfg.LogLevel, cfg.LogFormat)
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}

		ctx := cmd.Context()
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		log.InfoContext(ctx, "schema applied")
		return nil
	},
}
