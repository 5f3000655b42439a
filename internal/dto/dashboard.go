package dto

import (
	"time"

	"budget-tracker/internal/models"
)

// DashboardResponse bundles everything the home page renders
type DashboardResponse struct {
	Categories []CategoryResponse    `json:"categories"`
	Recent     []TransactionResponse `json:"recent"`
	Stats      StatsViewResponse     `json:"stats"`
}

func NewDashboardResponse(dashboard *models.Dashboard, loc *time.Location) DashboardResponse {
	return DashboardResponse{
		Categories: NewCategoryResponses(dashboard.Categories),
		Recent:     NewTransactionResponses(dashboard.Recent, loc),
		Stats:      NewStatsViewResponse(dashboard.Stats, loc),
	}
}

// Meta is the optional metadata block of a success response
type Meta struct {
	Degraded      bool     `json:"degraded,omitempty"`
	DegradedParts []string `json:"degradedParts,omitempty"`
}
