package main

import (
	"fmt"
	"log/slog"
	"os"

	"budget-tracker/internal/config"
	"budget-tracker/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the global category catalogue",
		Long: `Create the global categories and their sub-categories. Existing rows are
kept, so the command can be run repeatedly.`,
		RunE: runSeed,
	}
	cmd.Flags().String("file", "", "YAML catalogue to seed instead of the built-in one")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var catalogue []database.SeedCategory
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read catalogue: %w", err)
		}
		if catalogue, err = database.ParseCatalogue(data); err != nil {
			return err
		}
	}

	db, err := database.New(&cfg.Database, logger.Warn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	result, err := database.SeedCategories(cmd.Context(), db.DB, catalogue)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	slog.Info("Category catalogue seeded",
		"categories_created", result.CategoriesCreated,
		"sub_categories_created", result.SubCategoriesCreated,
	)
	return nil
}
