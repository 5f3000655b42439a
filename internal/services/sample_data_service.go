package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoSampleCategories means the category table has not been seeded yet
var ErrNoSampleCategories = errors.New("no categories to generate sample data against")

const (
	DefaultSampleDays  = 90
	MaxSampleDays      = 365
	DefaultSampleLimit = 200
	MaxSampleLimit     = 1000

	salaryDay        = 1
	maxDailyExpenses = 3
)

type amountRange struct {
	min, max float64
}

var (
	salaryRange  = amountRange{1800, 3200}
	expenseRange = amountRange{4, 120}
)

type sampleDataService struct {
	categories   repositories.CategoryRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	caches       *Caches
	location     *time.Location
	now          func() time.Time
	seed         uint64
}

// NewSampleDataService creates a SampleDataServiceInterface. Seed 0 picks a
// random seed per call.
func NewSampleDataService(
	categories repositories.CategoryRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	caches *Caches,
	location *time.Location,
	seed uint64,
) SampleDataServiceInterface {
	if caches == nil {
		caches = NewNoopCaches(nil)
	}
	if location == nil {
		location = time.UTC
	}
	return &sampleDataService{
		categories:   categories,
		transactions: transactions,
		caches:       caches,
		location:     location,
		now:          time.Now,
		seed:         seed,
	}
}

// GenerateHistory writes up to limit transactions spread over the last days
// days and returns how many were stored
func (s *sampleDataService) GenerateHistory(ctx context.Context, userID uuid.UUID, days, limit int) (int, error) {
	days = clamp(days, DefaultSampleDays, MaxSampleDays)
	limit = clamp(limit, DefaultSampleLimit, MaxSampleLimit)

	categories, err := s.categories.ListGlobal(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCategoriesUnavailable, err)
	}

	end := s.now().In(s.location)
	start := end.AddDate(0, 0, -days)

	generator := newSampleDataGenerator(s.seed, s.location)
	transactions := generator.generate(userID, categories, start, end, limit)
	if len(transactions) == 0 {
		return 0, ErrNoSampleCategories
	}

	created := 0
	for _, tx := range transactions {
		if err := s.transactions.Create(ctx, tx); err != nil {
			slog.WarnContext(ctx, "Skipping sample transaction",
				"user_id", userID,
				"date", tx.Date,
				"error", err,
			)
			continue
		}
		created++
	}

	if created > 0 {
		s.caches.InvalidateUser(userID)
	}

	slog.InfoContext(ctx, "Sample history generated",
		"user_id", userID,
		"days", days,
		"created", created,
	)

	return created, nil
}

func clamp(value, fallback, maxValue int) int {
	if value < 1 {
		return fallback
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

type sampleDataGenerator struct {
	faker    *gofakeit.Faker
	location *time.Location
}

func newSampleDataGenerator(seed uint64, location *time.Location) *sampleDataGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &sampleDataGenerator{
		faker:    gofakeit.New(seed),
		location: location,
	}
}

// generate walks the window day by day: a salary on the first of each month
// and a few purchases every day, oldest first, until limit is reached
func (g *sampleDataGenerator) generate(userID uuid.UUID, categories []models.Category, start, end time.Time, limit int) []*models.Transaction {
	var income, expense []*models.Category
	for i := range categories {
		switch categories[i].Type {
		case models.CategoryTypeIncome:
			income = append(income, &categories[i])
		case models.CategoryTypeExpense:
			expense = append(expense, &categories[i])
		}
	}
	if len(income) == 0 && len(expense) == 0 {
		return nil
	}

	transactions := make([]*models.Transaction, 0, limit)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, g.location)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, g.location)

	for !day.After(last) && len(transactions) < limit {
		if day.Day() == salaryDay && len(income) > 0 {
			category := income[g.faker.IntRange(0, len(income)-1)]
			transactions = append(transactions, g.transaction(userID, category, day, salaryRange, "Salaire"))
		}

		if len(expense) > 0 {
			for n := g.faker.IntRange(0, maxDailyExpenses); n > 0 && len(transactions) < limit; n-- {
				category := expense[g.faker.IntRange(0, len(expense)-1)]
				transactions = append(transactions, g.transaction(userID, category, day, expenseRange, g.faker.Company()))
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return transactions
}

func (g *sampleDataGenerator) transaction(userID uuid.UUID, category *models.Category, day time.Time, amounts amountRange, description string) *models.Transaction {
	tx := &models.Transaction{
		ID:              uuid.New(),
		Amount:          decimal.NewFromFloat(g.faker.Float64Range(amounts.min, amounts.max)).Round(2),
		Description:     description,
		Date:            day,
		TransactionType: category.Type,
		CategoryID:      category.ID,
		UserID:          userID,
	}

	if len(category.SubCategories) > 0 {
		sub := category.SubCategories[g.faker.IntRange(0, len(category.SubCategories)-1)]
		tx.SubCategoryID = &sub.ID
	}

	return tx
}
