package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	categories   CategoryServiceInterface
	transactions TransactionServiceInterface
	stats        StatsServiceInterface
	charts       ChartServiceInterface
	caches       *Caches
	metrics      MetricsRecorderInterface
}

// NewDashboardService creates a new DashboardServiceInterface instance
func NewDashboardService(
	categories CategoryServiceInterface,
	transactions TransactionServiceInterface,
	stats StatsServiceInterface,
	charts ChartServiceInterface,
	caches *Caches,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	if caches == nil {
		caches = NewNoopCaches(metrics)
	}
	return &dashboardService{
		categories:   categories,
		transactions: transactions,
		stats:        stats,
		charts:       charts,
		caches:       caches,
		metrics:      metrics,
	}
}

// Load fetches the three dashboard parts concurrently. A failing part falls
// back to its empty state and is listed in Dashboard.Degraded; only an invalid
// month is returned as an error.
func (s *dashboardService) Load(ctx context.Context, userID *uuid.UUID, year, month int) (*models.Dashboard, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}

	var key string
	if userID != nil {
		key = dashboardKey(*userID, year, month)
		if dashboard, ok := lookup(s.caches, s.caches.Dashboard, "dashboard", key); ok {
			return dashboard, nil
		}
	}
	gen := s.caches.Generation(userID)

	startedAt := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricDashboardDuration, time.Since(startedAt))
	}()

	var (
		mu         sync.Mutex
		degraded   []string
		categories []models.Category
		recent     []models.Transaction
		stats      *models.MonthlyStats
	)

	markDegraded := func(part string, err error) {
		slog.WarnContext(ctx, "Dashboard part degraded", "part", part, "error", err)
		s.metrics.IncrementCounter(MetricDashboardDegraded, map[string]string{"part": part})

		mu.Lock()
		defer mu.Unlock()
		degraded = append(degraded, part)
	}

	var g errgroup.Group

	g.Go(func() error {
		result, err := s.categories.ListCategories(ctx)
		if err != nil {
			markDegraded(models.DashboardPartCategories, err)
		}
		categories = result
		return nil
	})

	g.Go(func() error {
		result, err := s.transactions.ListRecent(ctx, userID, 0)
		if err != nil {
			markDegraded(models.DashboardPartRecent, err)
		}
		recent = result
		return nil
	})

	g.Go(func() error {
		result, err := s.stats.GetMonthlyStats(ctx, userID, year, month)
		if err != nil {
			markDegraded(models.DashboardPartStats, err)
		}
		stats = result
		return nil
	})

	_ = g.Wait()

	if categories == nil {
		categories = []models.Category{}
	}
	if recent == nil {
		recent = []models.Transaction{}
	}
	sort.Strings(degraded)

	dashboard := &models.Dashboard{
		Categories: categories,
		Recent:     recent,
		Stats:      s.charts.BuildStatsView(stats, year, month),
		Degraded:   degraded,
	}

	if userID != nil && !dashboard.IsDegraded() {
		s.caches.StoreDashboard(*userID, gen, year, month, dashboard)
	}

	return dashboard, nil
}
