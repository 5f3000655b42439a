package services

import (
	"io"
	"log/slog"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

func newTestActivity() ActivityLoggerInterface {
	return NewActivityLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testCategory(name string, categoryType models.CategoryType, subNames ...string) *models.Category {
	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
		Icon: "🛒",
		Type: categoryType,
	}
	for _, subName := range subNames {
		category.SubCategories = append(category.SubCategories, models.SubCategory{
			ID:         uuid.New(),
			Name:       subName,
			CategoryID: category.ID,
		})
	}
	return category
}

func testTransaction(category *models.Category, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		Amount:          decimal.RequireFromString(amount),
		Description:     category.Name,
		Date:            date,
		TransactionType: category.Type,
		CategoryID:      category.ID,
		Category:        category,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
