package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyStats summarises one calendar month for a user
type MonthlyStats struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	Expense    decimal.Decimal     `json:"expense"`
	Income     decimal.Decimal     `json:"income"`
	Balance    decimal.Decimal     `json:"balance"`
	Rollover   decimal.Decimal     `json:"rollover"`
	Categories []CategoryBreakdown `json:"categories"`
}

// CategoryBreakdown groups the month's expenses of one category
type CategoryBreakdown struct {
	CategoryID       uuid.UUID       `json:"categoryId"`
	Name             string          `json:"name"`
	Icon             string          `json:"icon"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transactionCount"`
	Transactions     []Transaction   `json:"transactions"`
}

// EmptyMonthlyStats is the zero-valued shape rendered when there is no data
func EmptyMonthlyStats(year, month int) *MonthlyStats {
	return &MonthlyStats{
		Year:       year,
		Month:      month,
		Expense:    decimal.Zero,
		Income:     decimal.Zero,
		Balance:    decimal.Zero,
		Rollover:   decimal.Zero,
		Categories: []CategoryBreakdown{},
	}
}
