package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seeds/categories.yaml
var defaultCatalogue []byte

// SeedCategory is one entry of the category catalogue
type SeedCategory struct {
	Name          string              `yaml:"name"`
	Icon          string              `yaml:"icon"`
	Type          models.CategoryType `yaml:"type"`
	SubCategories []string            `yaml:"sub_categories"`
}

type catalogueFile struct {
	Categories []SeedCategory `yaml:"categories"`
}

// SeedResult counts the rows a seed run inserted
type SeedResult struct {
	CategoriesCreated    int
	SubCategoriesCreated int
}

// ParseCatalogue decodes and checks a YAML category catalogue
func ParseCatalogue(data []byte) ([]SeedCategory, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category catalogue: %w", err)
	}

	for i, category := range file.Categories {
		if strings.TrimSpace(category.Name) == "" {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, models.ErrCategoryNameEmpty)
		}
		if !category.Type.IsValid() {
			return nil, fmt.Errorf("catalogue entry %q: %w", category.Name, models.ErrInvalidCategoryType)
		}
		for _, sub := range category.SubCategories {
			if !models.IsValidSubCategoryName(sub) {
				return nil, fmt.Errorf("catalogue entry %q, sub-category %q: %w", category.Name, sub, models.ErrSubCategoryName)
			}
		}
	}

	return file.Categories, nil
}

// DefaultCatalogue returns the embedded category catalogue
func DefaultCatalogue() ([]SeedCategory, error) {
	return ParseCatalogue(defaultCatalogue)
}

// SeedCategories inserts missing global categories and sub-categories.
// A nil catalogue seeds the embedded default.
func SeedCategories(ctx context.Context, db *gorm.DB, catalogue []SeedCategory) (SeedResult, error) {
	var result SeedResult

	if catalogue == nil {
		var err error
		catalogue, err = DefaultCatalogue()
		if err != nil {
			return result, err
		}
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalogue {
			category, created, err := findOrCreateCategory(tx, entry)
			if err != nil {
				return err
			}
			if created {
				result.CategoriesCreated++
			}

			for _, name := range entry.SubCategories {
				created, err := findOrCreateSubCategory(tx, category.ID, strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if created {
					result.SubCategoriesCreated++
				}
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to seed categories: %w", err)
	}

	return result, nil
}

func findOrCreateCategory(tx *gorm.DB, entry SeedCategory) (*models.Category, bool, error) {
	var category models.Category
	err := tx.Where("user_id IS NULL AND name = ? AND type = ?", entry.Name, entry.Type).
		First(&category).Error
	if err == nil {
		return &category, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up category %q: %w", entry.Name, err)
	}

	category = models.Category{
		Name: entry.Name,
		Icon: entry.Icon,
		Type: entry.Type,
	}
	if err := tx.Create(&category).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create category %q: %w", entry.Name, err)
	}
	return &category, true, nil
}

func findOrCreateSubCategory(tx *gorm.DB, categoryID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := tx.Model(&models.SubCategory{}).
		Where("category_id = ? AND name = ?", categoryID, name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up sub-category %q: %w", name, err)
	}
	if count > 0 {
		return false, nil
	}

	sub := models.SubCategory{Name: name, CategoryID: categoryID}
	if err := tx.Create(&sub).Error; err != nil {
		return false, fmt.Errorf("failed to create sub-category %q: %w", name, err)
	}
	return true, nil
}
