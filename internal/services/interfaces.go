package services

import (
	"context"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// CategoryServiceInterface exposes the shared category hierarchy
type CategoryServiceInterface interface {
	// ListCategories returns every global category with its sub-categories.
	// On storage failure it returns an empty slice and ErrCategoriesUnavailable.
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string) (*models.SubCategory, error)
}

// TransactionServiceInterface records and lists income and expense entries
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID *uuid.UUID, input models.TransactionInput) (*models.Transaction, error)
	ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]models.Transaction, error)
}

// StatsServiceInterface computes monthly statistics
type StatsServiceInterface interface {
	// GetMonthlyStats rejects out of range months with ErrInvalidMonth or
	// ErrInvalidYear. When storage fails the zero shape comes back together
	// with ErrStatsUnavailable.
	GetMonthlyStats(ctx context.Context, userID *uuid.UUID, year, month int) (*models.MonthlyStats, error)
	CurrentMonth() (year, month int)
}

// ChartServiceInterface turns monthly statistics into the stats page model
type ChartServiceInterface interface {
	BuildStatsView(stats *models.MonthlyStats, year, month int) *models.StatsView
}

// DashboardServiceInterface loads the home page bundle
type DashboardServiceInterface interface {
	Load(ctx context.Context, userID *uuid.UUID, year, month int) (*models.Dashboard, error)
}

// SampleDataServiceInterface fills a development account with plausible history
type SampleDataServiceInterface interface {
	GenerateHistory(ctx context.Context, userID uuid.UUID, days, limit int) (int, error)
}

// SessionVerifierInterface validates identity provider session tokens
type SessionVerifierInterface interface {
	Verify(token string) (*models.SessionClaims, error)
	ExtractToken(authHeader, cookie string) (string, error)
}

// IdentityServiceInterface maps verified sessions to local users
type IdentityServiceInterface interface {
	ResolveUser(ctx context.Context, claims *models.SessionClaims) (*models.User, error)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ActivityLoggerInterface writes structured activity events
type ActivityLoggerInterface interface {
	LogUserProvisioned(ctx context.Context, user *models.User)
	LogTransactionCreated(ctx context.Context, transaction *models.Transaction)
	LogSubCategoryCreated(ctx context.Context, sub *models.SubCategory)
	LogStorageFailure(ctx context.Context, operation string, err error)
}
