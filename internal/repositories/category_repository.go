package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("sub-category not found")
	ErrSubCategoryExists   = errors.New("sub-category already exists")
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// ListGlobal returns every shared category with its sub-categories, both sorted by name
func (r *categoryRepository) ListGlobal(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	if err := r.db.WithContext(ctx).
		Where("user_id IS NULL").
		Preload("SubCategories", orderByName).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category with its sub-categories
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category

	if err := r.db.WithContext(ctx).
		Preload("SubCategories", orderByName).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// CreateSubCategory inserts a sub-category. The (category_id, name) unique index
// is the only duplicate check.
func (r *categoryRepository) CreateSubCategory(ctx context.Context, sub *models.SubCategory) error {
	if sub == nil {
		return errors.New("sub-category cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrSubCategoryExists
		}
		return fmt.Errorf("failed to create sub-category: %w", err)
	}

	return nil
}

// GetSubCategory retrieves a sub-category by ID
func (r *categoryRepository) GetSubCategory(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	var sub models.SubCategory

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get sub-category: %w", err)
	}

	return &sub, nil
}
