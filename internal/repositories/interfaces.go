package repositories

import (
	"context"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

// CategoryRepositoryInterface defines the contract for the category reference table
type CategoryRepositoryInterface interface {
	ListGlobal(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateSubCategory(ctx context.Context, sub *models.SubCategory) error
	GetSubCategory(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	SumByTypeBefore(ctx context.Context, userID uuid.UUID, before time.Time) ([]models.TypeTotal, error)
}
