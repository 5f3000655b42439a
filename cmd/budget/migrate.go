package main

import (
	"fmt"
	"log/slog"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := database.RunMigrations(cmd.Context(), &cfg.Database); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			slog.Info("Database migrations completed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the applied and latest schema versions",
		RunE:  runMigrateStatus,
	})

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE:  runMigrateDown,
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

func openRunner() (*database.MigrationRunner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.OpenMigrationDB(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return database.NewMigrationRunner(db), func() { _ = db.Close() }, nil
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	runner, closeDB, err := openRunner()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := runner.WaitForDatabase(cmd.Context()); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	current, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "current: %d\nlatest:  %d\ndirty:   %t\n", current, latest, dirty)
	if current < latest {
		fmt.Fprintf(cmd.OutOrStdout(), "pending: %d\n", latest-current)
	}
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	steps, _ := cmd.Flags().GetInt("steps")
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	runner, closeDB, err := openRunner()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := runner.Rollback(steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	slog.Info("Rolled back migrations", "steps", steps)
	return nil
}
