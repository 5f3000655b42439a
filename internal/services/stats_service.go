package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinStatsYear = 1970
	MaxStatsYear = 9999
)

type statsService struct {
	transactions repositories.TransactionRepositoryInterface
	caches       *Caches
	metrics      MetricsRecorderInterface
	activity     ActivityLoggerInterface
	location     *time.Location
	breaker      *storageBreaker
	now          func() time.Time
}

// NewStatsService creates a new StatsServiceInterface instance. Month
// boundaries are computed in location.
func NewStatsService(
	transactions repositories.TransactionRepositoryInterface,
	caches *Caches,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	location *time.Location,
) StatsServiceInterface {
	if caches == nil {
		caches = NewNoopCaches(metrics)
	}
	if location == nil {
		location = time.UTC
	}
	return &statsService{
		transactions: transactions,
		caches:       caches,
		metrics:      metrics,
		activity:     activity,
		location:     location,
		breaker:      newStorageBreaker(DefaultBreakerConfig()),
		now:          time.Now,
	}
}

// CurrentMonth returns today's year and month in the configured location
func (s *statsService) CurrentMonth() (int, int) {
	now := s.now().In(s.location)
	return now.Year(), int(now.Month())
}

// ValidateMonth checks the year and month bounds accepted by GetMonthlyStats
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < MinStatsYear || year > MaxStatsYear {
		return ErrInvalidYear
	}
	return nil
}

// MonthWindow returns the first and last instant of a calendar month in loc
func MonthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func (s *statsService) GetMonthlyStats(ctx context.Context, userID *uuid.UUID, year, month int) (*models.MonthlyStats, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}
	if userID == nil {
		return models.EmptyMonthlyStats(year, month), nil
	}

	key := statsKey(*userID, year, month)
	if stats, ok := lookup(s.caches, s.caches.Stats, "stats", key); ok {
		return stats, nil
	}
	gen := s.caches.Generation(userID)

	if !s.breaker.Allow() {
		s.metrics.IncrementCounter(MetricStatsRequest, map[string]string{"status": "short_circuited"})
		return models.EmptyMonthlyStats(year, month), fmt.Errorf("%w: %w", ErrStatsUnavailable, ErrBreakerOpen)
	}

	startedAt := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricStatsDuration, time.Since(startedAt))
	}()

	start, end := MonthWindow(year, month, s.location)

	transactions, err := s.transactions.ListByDateRange(ctx, *userID, start, end)
	if err != nil {
		return s.unavailable(ctx, year, month, "list_month_transactions", err)
	}

	past, err := s.transactions.SumByTypeBefore(ctx, *userID, start)
	if err != nil {
		return s.unavailable(ctx, year, month, "sum_past_transactions", err)
	}

	s.breaker.RecordSuccess()
	stats := aggregate(year, month, transactions, past)

	s.metrics.IncrementCounter(MetricStatsRequest, map[string]string{"status": "success"})
	s.caches.StoreStats(*userID, gen, year, month, stats)
	return stats, nil
}

func (s *statsService) unavailable(ctx context.Context, year, month int, operation string, err error) (*models.MonthlyStats, error) {
	s.breaker.RecordFailure()
	s.activity.LogStorageFailure(ctx, operation, err)
	s.metrics.IncrementCounter(MetricStatsRequest, map[string]string{"status": "degraded"})
	return models.EmptyMonthlyStats(year, month), fmt.Errorf("%w: %w", ErrStatsUnavailable, err)
}

// aggregate folds one month of transactions and the per-type totals of all
// earlier months into MonthlyStats
func aggregate(year, month int, transactions []models.Transaction, past []models.TypeTotal) *models.MonthlyStats {
	stats := models.EmptyMonthlyStats(year, month)

	for _, tx := range transactions {
		switch tx.TransactionType {
		case models.CategoryTypeExpense:
			stats.Expense = stats.Expense.Add(tx.Amount)
		case models.CategoryTypeIncome:
			stats.Income = stats.Income.Add(tx.Amount)
		}
	}
	stats.Balance = stats.Income.Sub(stats.Expense)
	stats.Rollover = rollover(past)
	stats.Categories = aggregateExpenses(transactions)

	return stats
}

func rollover(past []models.TypeTotal) decimal.Decimal {
	income, expense := decimal.Zero, decimal.Zero
	for _, total := range past {
		switch total.TransactionType {
		case models.CategoryTypeIncome:
			income = income.Add(total.Total)
		case models.CategoryTypeExpense:
			expense = expense.Add(total.Total)
		}
	}
	return income.Sub(expense)
}

// aggregateExpenses groups expense transactions by category in first-seen
// order, then sorts by total descending. Ties keep first-seen order.
func aggregateExpenses(transactions []models.Transaction) []models.CategoryBreakdown {
	index := make(map[uuid.UUID]int)
	breakdown := make([]models.CategoryBreakdown, 0)

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}

		i, ok := index[tx.CategoryID]
		if !ok {
			name, icon := "", models.DefaultCategoryIcon
			if tx.Category != nil {
				name = tx.Category.Name
				icon = tx.Category.DisplayIcon()
			}
			breakdown = append(breakdown, models.CategoryBreakdown{
				CategoryID:   tx.CategoryID,
				Name:         name,
				Icon:         icon,
				Total:        decimal.Zero,
				Transactions: []models.Transaction{},
			})
			i = len(breakdown) - 1
			index[tx.CategoryID] = i
		}

		entry := &breakdown[i]
		entry.Total = entry.Total.Add(tx.Amount)
		entry.TransactionCount++
		entry.Transactions = append(entry.Transactions, tx)
	}

	sort.SliceStable(breakdown, func(a, b int) bool {
		return breakdown[a].Total.GreaterThan(breakdown[b].Total)
	})

	return breakdown
}
