package handlers

import (
	"net/http"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home page bundle
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	statsService     services.StatsServiceInterface
	location         *time.Location
}

// NewDashboardHandler creates a new dashboard handler. The stats service only
// supplies the default month.
func NewDashboardHandler(
	dashboardService services.DashboardServiceInterface,
	statsService services.StatsServiceInterface,
	location *time.Location,
) *DashboardHandler {
	if location == nil {
		location = time.UTC
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
		statsService:     statsService,
		location:         location,
	}
}

// GetDashboard returns categories, recent transactions and the month's stats view
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} SuccessResponse{data=dto.DashboardResponse} "Dashboard, meta lists degraded parts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 / VALIDATION_004 - Bad year or month"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	year, month, ok, err := monthFromQuery(c, h.statsService)
	if !ok {
		return err
	}

	dashboard, err := h.dashboardService.Load(c.Request().Context(), getUserIDFromContext(c), year, month)
	if err != nil {
		return sendServiceError(c, err)
	}

	response := dto.NewDashboardResponse(dashboard, h.location)
	if dashboard.IsDegraded() {
		return SendDegraded(c, response, dashboard.Degraded...)
	}
	return SendData(c, http.StatusOK, response, "")
}
