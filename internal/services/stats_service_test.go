package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StatsServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	txRepo  *repository_mocks.MockTransactionRepositoryInterface
	caches  *Caches
	service StatsServiceInterface
	ctx     context.Context
	userID  uuid.UUID
}

func (s *StatsServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.caches = NewCaches(config.CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 16}, nil, nil)
	s.service = NewStatsService(s.txRepo, s.caches, newTestMetrics(), newTestActivity(), time.UTC)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *StatsServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) expectMonth(year, month int, transactions []models.Transaction, past []models.TypeTotal) {
	start, end := MonthWindow(year, month, time.UTC)
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).Return(transactions, nil)
	s.txRepo.EXPECT().SumByTypeBefore(gomock.Any(), s.userID, start).Return(past, nil)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_WorkedExample() {
	course := testCategory("Course", models.CategoryTypeExpense)
	revenu := testCategory("Revenu", models.CategoryTypeIncome)

	transactions := []models.Transaction{
		testTransaction(course, "50", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)),
		testTransaction(course, "30", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)),
		testTransaction(revenu, "1000", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	s.expectMonth(2025, 3, transactions, nil)

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)

	s.True(dec("80").Equal(stats.Expense))
	s.True(dec("1000").Equal(stats.Income))
	s.True(dec("920").Equal(stats.Balance))
	s.True(stats.Rollover.IsZero())

	s.Require().Len(stats.Categories, 1)
	entry := stats.Categories[0]
	s.Equal("Course", entry.Name)
	s.Equal(course.ID, entry.CategoryID)
	s.True(dec("80").Equal(entry.Total))
	s.Equal(2, entry.TransactionCount)
	s.Require().Len(entry.Transactions, 2)
	s.Equal(transactions[0].ID, entry.Transactions[0].ID, "transactions keep fetch order")
}

func (s *StatsServiceSuite) TestGetMonthlyStats_Rollover() {
	s.expectMonth(2025, 3, nil, []models.TypeTotal{
		{TransactionType: models.CategoryTypeIncome, Total: dec("2000")},
		{TransactionType: models.CategoryTypeExpense, Total: dec("450.25")},
	})

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)

	s.True(dec("1549.75").Equal(stats.Rollover))
	s.True(stats.Expense.IsZero())
	s.True(stats.Balance.IsZero())
	s.Empty(stats.Categories)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_NegativeRollover() {
	s.expectMonth(2025, 1, nil, []models.TypeTotal{
		{TransactionType: models.CategoryTypeExpense, Total: dec("120")},
	})

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 1)
	s.Require().NoError(err)
	s.True(dec("-120").Equal(stats.Rollover))
}

func (s *StatsServiceSuite) TestGetMonthlyStats_NilIdentity() {
	stats, err := s.service.GetMonthlyStats(s.ctx, nil, 2025, 3)
	s.Require().NoError(err)

	s.Equal(2025, stats.Year)
	s.Equal(3, stats.Month)
	s.True(stats.Expense.IsZero())
	s.True(stats.Income.IsZero())
	s.True(stats.Rollover.IsZero())
	s.NotNil(stats.Categories)
	s.Empty(stats.Categories)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_InvalidMonth() {
	for _, month := range []int{0, 13, -1} {
		_, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, month)
		s.ErrorIs(err, ErrInvalidMonth)
	}

	_, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 1969, 5)
	s.ErrorIs(err, ErrInvalidYear)
	_, err = s.service.GetMonthlyStats(s.ctx, &s.userID, 10000, 5)
	s.ErrorIs(err, ErrInvalidYear)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_StorageFailureDegrades() {
	start, end := MonthWindow(2025, 3, time.UTC)
	dbErr := errors.New("connection reset")
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).Return(nil, dbErr)

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)

	s.ErrorIs(err, ErrStatsUnavailable)
	s.ErrorIs(err, dbErr)
	s.Require().NotNil(stats)
	s.True(stats.Expense.IsZero())
	s.Empty(stats.Categories)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_BreakerSkipsStorage() {
	start, end := MonthWindow(2025, 3, time.UTC)
	maxFailures := DefaultBreakerConfig().MaxFailures
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).
		Return(nil, errors.New("connection refused")).
		Times(maxFailures)

	for i := 0; i < maxFailures; i++ {
		_, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
		s.ErrorIs(err, ErrStatsUnavailable)
	}

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.ErrorIs(err, ErrStatsUnavailable)
	s.ErrorIs(err, ErrBreakerOpen)
	s.Require().NotNil(stats)
	s.Equal(3, stats.Month)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_RolloverFailureDegrades() {
	start, end := MonthWindow(2025, 3, time.UTC)
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).Return([]models.Transaction{}, nil)
	s.txRepo.EXPECT().SumByTypeBefore(gomock.Any(), s.userID, start).Return(nil, errors.New("timeout"))

	stats, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.ErrorIs(err, ErrStatsUnavailable)
	s.True(stats.Rollover.IsZero())
}

func (s *StatsServiceSuite) TestGetMonthlyStats_CachedAndInvalidated() {
	course := testCategory("Course", models.CategoryTypeExpense)
	s.expectMonth(2025, 3, []models.Transaction{testTransaction(course, "10", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))}, nil)

	first, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)

	second, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)
	s.Same(first, second)

	s.caches.InvalidateUser(s.userID)
	s.expectMonth(2025, 3, nil, nil)

	third, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)
	s.True(third.Expense.IsZero())
}

func (s *StatsServiceSuite) TestGetMonthlyStats_WriteDuringReadIsNotCached() {
	start, end := MonthWindow(2025, 3, time.UTC)
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).
		DoAndReturn(func(context.Context, uuid.UUID, time.Time, time.Time) ([]models.Transaction, error) {
			s.caches.InvalidateUser(s.userID)
			return nil, nil
		})
	s.txRepo.EXPECT().SumByTypeBefore(gomock.Any(), s.userID, start).Return(nil, nil)

	_, err := s.service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.Require().NoError(err)

	_, cached := s.caches.Stats.Get(statsKey(s.userID, 2025, 3))
	s.False(cached)
}

func (s *StatsServiceSuite) TestGetMonthlyStats_WindowInLocation() {
	paris, err := time.LoadLocation("Europe/Paris")
	s.Require().NoError(err)

	service := NewStatsService(s.txRepo, nil, newTestMetrics(), newTestActivity(), paris)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, paris)
	end := time.Date(2025, 3, 31, 23, 59, 59, 999999999, paris)
	s.txRepo.EXPECT().ListByDateRange(gomock.Any(), s.userID, start, end).Return(nil, nil)
	s.txRepo.EXPECT().SumByTypeBefore(gomock.Any(), s.userID, start).Return(nil, nil)

	_, err = service.GetMonthlyStats(s.ctx, &s.userID, 2025, 3)
	s.NoError(err)
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2024, 2, time.UTC)
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}

	start, end = MonthWindow(2025, 12, time.UTC)
	if start.Month() != time.December || end.Month() != time.December || end.Day() != 31 {
		t.Fatalf("unexpected December window %v - %v", start, end)
	}
}

func TestAggregateExpenses_OrderAndTies(t *testing.T) {
	essence := testCategory("Essence", models.CategoryTypeExpense)
	course := testCategory("Course", models.CategoryTypeExpense)
	clope := testCategory("Clope", models.CategoryTypeExpense)
	revenu := testCategory("Revenu", models.CategoryTypeIncome)
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		testTransaction(essence, "40", day),
		testTransaction(revenu, "5000", day),
		testTransaction(course, "25", day),
		testTransaction(clope, "60", day),
		testTransaction(course, "15", day),
	}

	breakdown := aggregateExpenses(transactions)

	if len(breakdown) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(breakdown))
	}
	// Essence and Course tie at 40; Essence was seen first
	wantNames := []string{"Clope", "Essence", "Course"}
	for i, name := range wantNames {
		if breakdown[i].Name != name {
			t.Errorf("entry %d: want %s, got %s", i, name, breakdown[i].Name)
		}
	}
	if breakdown[2].TransactionCount != 2 || !breakdown[2].Total.Equal(dec("40")) {
		t.Errorf("unexpected Course entry %+v", breakdown[2])
	}
}

func TestAggregateExpenses_SumMatchesExpense(t *testing.T) {
	course := testCategory("Course", models.CategoryTypeExpense)
	essence := testCategory("Essence", models.CategoryTypeExpense)
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		testTransaction(course, "10.10", day),
		testTransaction(essence, "20.20", day),
		testTransaction(course, "0.01", day),
	}

	stats := aggregate(2025, 3, transactions, nil)

	total := dec("0")
	count := 0
	for _, entry := range stats.Categories {
		total = total.Add(entry.Total)
		count += entry.TransactionCount
	}
	if !total.Equal(stats.Expense) {
		t.Errorf("breakdown total %s != expense %s", total, stats.Expense)
	}
	if count != 3 {
		t.Errorf("expected 3 counted transactions, got %d", count)
	}
	if !stats.Expense.Equal(dec("30.31")) {
		t.Errorf("expected exact decimal sum 30.31, got %s", stats.Expense)
	}
}

func TestAggregateExpenses_MissingCategoryUsesDefaultIcon(t *testing.T) {
	tx := models.Transaction{
		Amount:          dec("5"),
		TransactionType: models.CategoryTypeExpense,
		CategoryID:      uuid.New(),
	}

	breakdown := aggregateExpenses([]models.Transaction{tx})
	if len(breakdown) != 1 || breakdown[0].Icon != models.DefaultCategoryIcon {
		t.Fatalf("unexpected breakdown %+v", breakdown)
	}
}

func TestCurrentMonth(t *testing.T) {
	service := NewStatsService(nil, nil, newTestMetrics(), newTestActivity(), time.UTC).(*statsService)
	service.now = func() time.Time { return time.Date(2025, 7, 31, 23, 30, 0, 0, time.UTC) }

	year, month := service.CurrentMonth()
	if year != 2025 || month != 7 {
		t.Fatalf("unexpected month %d-%d", year, month)
	}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	service.location = tokyo
	year, month = service.CurrentMonth()
	if year != 2025 || month != 8 {
		t.Fatalf("expected August in Tokyo, got %d-%d", year, month)
	}
}
