package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface.
// Dates are compared in UTC; callers may pass bounds in any location.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	transaction.Date = transaction.Date.UTC()
	if err := r.db.WithContext(ctx).Omit("Category", "SubCategory").Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListRecent returns the user's newest transactions first
func (r *transactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return transactions, nil
}

// ListByDateRange returns the user's transactions with start <= date <= end, newest first
func (r *transactionRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.UTC(), end.UTC()).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}

	return transactions, nil
}

// SumByTypeBefore totals the user's amounts per type for every date strictly before the bound.
// Totals are rounded to the amount scale since some backends sum in floating point.
func (r *transactionRepository) SumByTypeBefore(ctx context.Context, userID uuid.UUID, before time.Time) ([]models.TypeTotal, error) {
	var totals []models.TypeTotal

	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("transaction_type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date < ?", userID, before.UTC()).
		Group("transaction_type").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	for i := range totals {
		totals[i].Total = totals[i].Total.Round(models.AmountScale)
	}
	return totals, nil
}
