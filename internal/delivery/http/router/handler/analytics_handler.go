package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler holds dependencies for the dashboard reporting handlers
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
	}
}

// OrderAnalytics serves revenue, profit, status counts and monthly growth
func (h *AnalyticsHandler) OrderAnalytics(c echo.Context) error {
	analytics, err := h.analyticsUC.OrderAnalytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}

// ProductAnalytics serves the per-product sales rollup
func (h *AnalyticsHandler) ProductAnalytics(c echo.Context) error {
	sortBy := c.QueryParam("sort_by")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	analytics, err := h.analyticsUC.ProductAnalytics(c.Request().Context(), sortBy, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}

// DailyStats serves the trailing per-day rollup
func (h *AnalyticsHandler) DailyStats(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	stats, err := h.analyticsUC.DailyStats(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
