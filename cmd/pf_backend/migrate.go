package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/SscSPs/personal_finance_app/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Example: `  # Apply pending migrations
  pf_backend migrate up

  # Revert the last migration
  pf_backend migrate down --steps 1`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return applyMigrations(cfg().DatabaseURL)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert applied migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := database.RollbackMigrations(cfg().DatabaseURL, steps); err != nil {
				return err
			}
			slog.Info("Migrations reverted", slog.Int("steps", steps))
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, dirty, err := database.MigrationVersion(cfg().DatabaseURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
			return nil
		},
	})

	return cmd
}

func applyMigrations(databaseURL string) error {
	slog.Info("Running database migrations")
	applied, err := database.RunMigrations(databaseURL)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if applied {
		slog.Info("Database migrations applied successfully")
	} else {
		slog.Info("No new migrations to apply")
	}
	return nil
}
