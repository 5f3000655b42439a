package models

import "github.com/shopspring/decimal"

// MonthRef identifies a calendar month
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ChartSlice is one category entry of the pie and bar charts
type ChartSlice struct {
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Fill       string          `json:"fill"`
	Count      int             `json:"count"`
}

// StatsView is the stats page model built from MonthlyStats
type StatsView struct {
	Stats    *MonthlyStats `json:"stats"`
	Chart    []ChartSlice  `json:"chart"`
	HasData  bool          `json:"hasData"`
	Previous MonthRef      `json:"previous"`
	Next     MonthRef      `json:"next"`
}
