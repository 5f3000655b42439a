package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/validation"

	"github.com/google/uuid"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

type transactionService struct {
	transactions repositories.TransactionRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	caches       *Caches
	metrics      MetricsRecorderInterface
	activity     ActivityLoggerInterface
	location     *time.Location
	recentLimit  int
}

// NewTransactionService creates a new TransactionServiceInterface instance.
// Calendar dates are interpreted in location; recentLimit is the default
// page size of ListRecent.
func NewTransactionService(
	transactions repositories.TransactionRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	caches *Caches,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	location *time.Location,
	recentLimit int,
) TransactionServiceInterface {
	if caches == nil {
		caches = NewNoopCaches(metrics)
	}
	if location == nil {
		location = time.UTC
	}
	if recentLimit <= 0 || recentLimit > MaxRecentLimit {
		recentLimit = DefaultRecentLimit
	}
	return &transactionService{
		transactions: transactions,
		categories:   categories,
		caches:       caches,
		metrics:      metrics,
		activity:     activity,
		location:     location,
		recentLimit:  recentLimit,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID *uuid.UUID, input models.TransactionInput) (*models.Transaction, error) {
	if userID == nil {
		return nil, ErrUnauthorized
	}

	if err := validation.GetValidator().Struct(input); err != nil {
		return nil, newValidationError(validation.Messages(err)...)
	}

	date, err := validation.ParseDate(input.Date, s.location)
	if err != nil {
		return nil, newValidationError("date: must be a date in YYYY-MM-DD format")
	}

	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, newValidationError("amount: must be a positive amount")
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, newValidationError("categoryId: must be a valid identifier")
	}
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.activity.LogStorageFailure(ctx, "get_category", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	transactionType := models.CategoryType(input.Type)
	if category.Type != transactionType {
		return nil, ErrTypeMismatch
	}

	var subCategoryID *uuid.UUID
	if input.SubCategoryID != "" {
		id, err := uuid.Parse(input.SubCategoryID)
		if err != nil {
			return nil, newValidationError("subCategoryId: must be a valid identifier")
		}
		if err := s.checkSubCategory(ctx, category, id); err != nil {
			return nil, err
		}
		subCategoryID = &id
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = category.Name
	}

	transaction := &models.Transaction{
		Amount:          amount,
		Description:     description,
		Date:            date,
		TransactionType: transactionType,
		CategoryID:      category.ID,
		SubCategoryID:   subCategoryID,
		UserID:          *userID,
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		s.activity.LogStorageFailure(ctx, "create_transaction", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	transaction.Category = category
	if subCategoryID != nil {
		for i := range category.SubCategories {
			if category.SubCategories[i].ID == *subCategoryID {
				transaction.SubCategory = &category.SubCategories[i]
				break
			}
		}
	}

	s.caches.InvalidateUser(*userID)
	s.metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": string(transactionType)})
	s.activity.LogTransactionCreated(ctx, transaction)

	return transaction, nil
}

func (s *transactionService) checkSubCategory(ctx context.Context, category *models.Category, id uuid.UUID) error {
	if category.HasSubCategory(id) {
		return nil
	}

	if _, err := s.categories.GetSubCategory(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSubCategoryNotFound) {
			return ErrSubCategoryNotFound
		}
		s.activity.LogStorageFailure(ctx, "get_sub_category", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return ErrSubCategoryMismatch
}

func (s *transactionService) ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]models.Transaction, error) {
	if userID == nil {
		return []models.Transaction{}, nil
	}
	if limit <= 0 {
		limit = s.recentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	transactions, err := s.transactions.ListRecent(ctx, *userID, limit)
	if err != nil {
		s.activity.LogStorageFailure(ctx, "list_recent_transactions", err)
		return []models.Transaction{}, fmt.Errorf("%w: %w", ErrRecentUnavailable, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	s.metrics.RecordGauge(MetricRecentTransactions, float64(len(transactions)), nil)
	return transactions, nil
}
