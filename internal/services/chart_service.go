package services

import (
	"time"

	"budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ChartPalette is cycled through by category rank
var ChartPalette = []string{
	"#0ea5e9",
	"#22c55e",
	"#eab308",
	"#f97316",
	"#ef4444",
	"#a855f7",
	"#ec4899",
	"#64748b",
}

var hundred = decimal.NewFromInt(100)

type chartService struct{}

// NewChartService creates a new ChartServiceInterface instance
func NewChartService() ChartServiceInterface {
	return &chartService{}
}

// BuildStatsView derives the chart series and month navigation. A nil stats
// renders the empty month.
func (s *chartService) BuildStatsView(stats *models.MonthlyStats, year, month int) *models.StatsView {
	if stats == nil {
		stats = models.EmptyMonthlyStats(year, month)
	}

	view := &models.StatsView{
		Stats:    stats,
		Chart:    []models.ChartSlice{},
		HasData:  stats.Expense.IsPositive(),
		Previous: shiftMonth(year, month, -1),
		Next:     shiftMonth(year, month, 1),
	}

	for _, entry := range stats.Categories {
		if !entry.Total.IsPositive() {
			continue
		}

		icon := entry.Icon
		if icon == "" {
			icon = models.DefaultCategoryIcon
		}

		view.Chart = append(view.Chart, models.ChartSlice{
			Name:       entry.Name,
			Icon:       icon,
			Value:      entry.Total,
			Percentage: percentage(entry.Total, stats.Expense),
			Fill:       ChartPalette[len(view.Chart)%len(ChartPalette)],
			Count:      entry.TransactionCount,
		})
	}

	return view
}

// percentage is part/total*100 rounded to one decimal, or zero when total is not positive
func percentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(1)
}

func shiftMonth(year, month, delta int) models.MonthRef {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return models.MonthRef{Year: t.Year(), Month: int(t.Month())}
}
