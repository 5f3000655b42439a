package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves monthly statistics and the chart view built from them
type StatsHandler struct {
	statsService services.StatsServiceInterface
	chartService services.ChartServiceInterface
	location     *time.Location
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(
	statsService services.StatsServiceInterface,
	chartService services.ChartServiceInterface,
	location *time.Location,
) *StatsHandler {
	if location == nil {
		location = time.UTC
	}
	return &StatsHandler{
		statsService: statsService,
		chartService: chartService,
		location:     location,
	}
}

// GetMonthlyStats returns totals, rollover and the expense breakdown of a month
// @Summary Monthly stats
// @Tags Stats
// @Produce json
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} SuccessResponse{data=dto.MonthlyStatsResponse} "Stats, zero shape for guests"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 / VALIDATION_004 - Bad year or month"
// @Router /stats [get]
func (h *StatsHandler) GetMonthlyStats(c echo.Context) error {
	year, month, ok, err := monthFromQuery(c, h.statsService)
	if !ok {
		return err
	}

	stats, err := h.statsService.GetMonthlyStats(c.Request().Context(), getUserIDFromContext(c), year, month)
	if err != nil {
		if stderrors.Is(err, services.ErrStatsUnavailable) {
			return SendDegraded(c, dto.NewMonthlyStatsResponse(zeroIfNil(stats, year, month), h.location), models.DashboardPartStats)
		}
		return sendServiceError(c, err)
	}

	return SendData(c, http.StatusOK, dto.NewMonthlyStatsResponse(stats, h.location), "")
}

// GetCharts returns the stats page model: chart series, totals and navigation
// @Summary Stats charts
// @Tags Stats
// @Produce json
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} SuccessResponse{data=dto.StatsViewResponse} "Chart view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 / VALIDATION_004 - Bad year or month"
// @Router /stats/charts [get]
func (h *StatsHandler) GetCharts(c echo.Context) error {
	year, month, ok, err := monthFromQuery(c, h.statsService)
	if !ok {
		return err
	}

	stats, err := h.statsService.GetMonthlyStats(c.Request().Context(), getUserIDFromContext(c), year, month)
	degraded := stderrors.Is(err, services.ErrStatsUnavailable)
	if err != nil && !degraded {
		return sendServiceError(c, err)
	}

	view := dto.NewStatsViewResponse(h.chartService.BuildStatsView(stats, year, month), h.location)
	if degraded {
		return SendDegraded(c, view, models.DashboardPartStats)
	}
	return SendData(c, http.StatusOK, view, "")
}

// monthFromQuery resolves ?year=&month=, defaulting each to the current
// month. When ok is false the error response has already been written and
// the returned error is what the handler must return.
func monthFromQuery(c echo.Context, stats services.StatsServiceInterface) (int, int, bool, error) {
	currentYear, currentMonth := stats.CurrentMonth()

	year, err := getIntParam(c, "year", currentYear)
	if err != nil {
		return 0, 0, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year: must be an integer"))
	}
	month, err := getIntParam(c, "month", currentMonth)
	if err != nil {
		return 0, 0, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("month: must be an integer"))
	}
	if err := services.ValidateMonth(year, month); err != nil {
		return 0, 0, false, SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	return year, month, true, nil
}

func zeroIfNil(stats *models.MonthlyStats, year, month int) *models.MonthlyStats {
	if stats == nil {
		return models.EmptyMonthlyStats(year, month)
	}
	return stats
}
