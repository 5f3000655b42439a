package dto

import (
	"time"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryBreakdownResponse struct {
	CategoryID       uuid.UUID             `json:"categoryId"`
	Name             string                `json:"name"`
	Icon             string                `json:"icon"`
	Total            decimal.Decimal       `json:"total"`
	TransactionCount int                   `json:"transactionCount"`
	Transactions     []TransactionResponse `json:"transactions"`
}

// MonthlyStatsResponse mirrors models.MonthlyStats with API-shaped transactions
type MonthlyStatsResponse struct {
	Year       int                         `json:"year"`
	Month      int                         `json:"month"`
	Expense    decimal.Decimal             `json:"expense"`
	Income     decimal.Decimal             `json:"income"`
	Balance    decimal.Decimal             `json:"balance"`
	Rollover   decimal.Decimal             `json:"rollover"`
	Categories []CategoryBreakdownResponse `json:"categories"`
}

// StatsViewResponse is the stats page: totals, chart series and navigation
type StatsViewResponse struct {
	Stats    MonthlyStatsResponse `json:"stats"`
	Chart    []models.ChartSlice  `json:"chart"`
	HasData  bool                 `json:"hasData"`
	Previous models.MonthRef      `json:"previous"`
	Next     models.MonthRef      `json:"next"`
}

func NewMonthlyStatsResponse(stats *models.MonthlyStats, loc *time.Location) MonthlyStatsResponse {
	breakdown := make([]CategoryBreakdownResponse, 0, len(stats.Categories))
	for _, entry := range stats.Categories {
		breakdown = append(breakdown, CategoryBreakdownResponse{
			CategoryID:       entry.CategoryID,
			Name:             entry.Name,
			Icon:             entry.Icon,
			Total:            entry.Total,
			TransactionCount: entry.TransactionCount,
			Transactions:     NewTransactionResponses(entry.Transactions, loc),
		})
	}

	return MonthlyStatsResponse{
		Year:       stats.Year,
		Month:      stats.Month,
		Expense:    stats.Expense,
		Income:     stats.Income,
		Balance:    stats.Balance,
		Rollover:   stats.Rollover,
		Categories: breakdown,
	}
}

func NewStatsViewResponse(view *models.StatsView, loc *time.Location) StatsViewResponse {
	chart := view.Chart
	if chart == nil {
		chart = []models.ChartSlice{}
	}

	return StatsViewResponse{
		Stats:    NewMonthlyStatsResponse(view.Stats, loc),
		Chart:    chart,
		HasData:  view.HasData,
		Previous: view.Previous,
		Next:     view.Next,
	}
}
