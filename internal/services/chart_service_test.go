package services

import (
	"testing"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakdownEntry(name, icon, total string, count int) models.CategoryBreakdown {
	return models.CategoryBreakdown{
		CategoryID:       uuid.New(),
		Name:             name,
		Icon:             icon,
		Total:            dec(total),
		TransactionCount: count,
	}
}

func TestBuildStatsView_PercentagesAndPalette(t *testing.T) {
	stats := models.EmptyMonthlyStats(2025, 3)
	stats.Expense = dec("300")
	stats.Categories = []models.CategoryBreakdown{
		breakdownEntry("Course", "🛒", "200", 4),
		breakdownEntry("Essence", "⛽", "100", 1),
	}

	view := NewChartService().BuildStatsView(stats, 2025, 3)

	require.Len(t, view.Chart, 2)
	assert.True(t, view.HasData)
	assert.Same(t, stats, view.Stats)

	assert.Equal(t, "Course", view.Chart[0].Name)
	assert.Equal(t, "#0ea5e9", view.Chart[0].Fill)
	assert.True(t, dec("66.7").Equal(view.Chart[0].Percentage), view.Chart[0].Percentage.String())
	assert.Equal(t, 4, view.Chart[0].Count)

	assert.Equal(t, "#22c55e", view.Chart[1].Fill)
	assert.True(t, dec("33.3").Equal(view.Chart[1].Percentage), view.Chart[1].Percentage.String())
}

func TestBuildStatsView_PaletteWraps(t *testing.T) {
	stats := models.EmptyMonthlyStats(2025, 3)
	stats.Expense = dec("45")
	for i := 0; i < 9; i++ {
		stats.Categories = append(stats.Categories, breakdownEntry("C", "🛒", "5", 1))
	}

	view := NewChartService().BuildStatsView(stats, 2025, 3)

	require.Len(t, view.Chart, 9)
	assert.Equal(t, "#64748b", view.Chart[7].Fill)
	assert.Equal(t, "#0ea5e9", view.Chart[8].Fill)
}

func TestBuildStatsView_SkipsZeroTotalsAndFallsBackIcon(t *testing.T) {
	stats := models.EmptyMonthlyStats(2025, 3)
	stats.Expense = dec("10")
	stats.Categories = []models.CategoryBreakdown{
		breakdownEntry("Autre", "", "10", 1),
		breakdownEntry("Vide", "🚬", "0", 0),
	}

	view := NewChartService().BuildStatsView(stats, 2025, 3)

	require.Len(t, view.Chart, 1)
	assert.Equal(t, models.DefaultCategoryIcon, view.Chart[0].Icon)
	assert.True(t, dec("100").Equal(view.Chart[0].Percentage))
}

func TestBuildStatsView_NoData(t *testing.T) {
	view := NewChartService().BuildStatsView(nil, 2025, 3)

	assert.False(t, view.HasData)
	assert.NotNil(t, view.Chart)
	assert.Empty(t, view.Chart)
	require.NotNil(t, view.Stats)
	assert.Equal(t, 3, view.Stats.Month)
}

func TestBuildStatsView_Navigation(t *testing.T) {
	tests := []struct {
		year, month int
		prev, next  models.MonthRef
	}{
		{2025, 3, models.MonthRef{Year: 2025, Month: 2}, models.MonthRef{Year: 2025, Month: 4}},
		{2025, 1, models.MonthRef{Year: 2024, Month: 12}, models.MonthRef{Year: 2025, Month: 2}},
		{2025, 12, models.MonthRef{Year: 2025, Month: 11}, models.MonthRef{Year: 2026, Month: 1}},
	}

	for _, tt := range tests {
		view := NewChartService().BuildStatsView(nil, tt.year, tt.month)
		assert.Equal(t, tt.prev, view.Previous)
		assert.Equal(t, tt.next, view.Next)
	}
}

func TestPercentage_ZeroTotal(t *testing.T) {
	assert.True(t, percentage(dec("5"), dec("0")).IsZero())
	assert.True(t, dec("12.5").Equal(percentage(dec("1"), dec("8"))))
}
