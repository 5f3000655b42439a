package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	repo     repositories.CategoryRepositoryInterface
	caches   *Caches
	metrics  MetricsRecorderInterface
	activity ActivityLoggerInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	repo repositories.CategoryRepositoryInterface,
	caches *Caches,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) CategoryServiceInterface {
	if caches == nil {
		caches = NewNoopCaches(metrics)
	}
	return &categoryService{
		repo:     repo,
		caches:   caches,
		metrics:  metrics,
		activity: activity,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if categories, ok := lookup(s.caches, s.caches.Categories, "categories", categoriesKey); ok {
		return categories, nil
	}
	gen := s.caches.Generation(nil)

	categories, err := s.repo.ListGlobal(ctx)
	if err != nil {
		s.activity.LogStorageFailure(ctx, "list_categories", err)
		return []models.Category{}, fmt.Errorf("%w: %w", ErrCategoriesUnavailable, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	s.metrics.RecordGauge(MetricCategoriesAvailable, float64(len(categories)), nil)
	s.caches.StoreCategories(gen, categories)
	return categories, nil
}

func (s *categoryService) CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string) (*models.SubCategory, error) {
	name = strings.TrimSpace(name)
	if !models.IsValidSubCategoryName(name) {
		return nil, ErrInvalidSubCategoryName
	}

	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.activity.LogStorageFailure(ctx, "get_category", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	sub := &models.SubCategory{
		Name:       name,
		CategoryID: categoryID,
	}
	if err := s.repo.CreateSubCategory(ctx, sub); err != nil {
		// Duplicates and store failures look the same to the caller
		slog.WarnContext(ctx, "Failed to create sub-category",
			"category_id", categoryID,
			"name", name,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrSubCategoryCreateFailed, err)
	}

	s.caches.InvalidateCategories()
	s.metrics.IncrementCounter(MetricSubCategoryCreated, nil)
	s.activity.LogSubCategoryCreated(ctx, sub)

	return sub, nil
}
