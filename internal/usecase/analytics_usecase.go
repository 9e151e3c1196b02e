package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Sort keys accepted by ProductAnalytics.
const (
	ProductSortByRevenue = "revenue"
	ProductSortByProfit  = "profit"
	ProductSortBySales   = "sales"
)

// Bounds for the daily rollup window.
const (
	DefaultDailyStatsDays = 30
	MaxDailyStatsDays     = 365
)

// AnalyticsUsecase defines the dashboard reporting use cases. All reports
// scan a bounded window of the most recent orders; a record that fails to
// parse is skipped and logged, never aborts the report.
type AnalyticsUsecase interface {
	// OrderAnalytics computes revenue, profit, status counts and
	// month-over-month growth.
	OrderAnalytics(ctx context.Context) (*entity.OrderAnalytics, error)

	// ProductAnalytics computes per-product sales rollups, sorted by the
	// given key and truncated to limit. Products with no sales are omitted.
	ProductAnalytics(ctx context.Context, sortBy string, limit int) ([]*entity.ProductAnalytic, error)

	// DailyStats returns exactly one bucket per calendar day (UTC) for the
	// trailing days window, oldest first, days with no orders zero-filled.
	// A non-positive days falls back to the default; days above the maximum
	// is clamped.
	DailyStats(ctx context.Context, days int) ([]*entity.DailyStat, error)
}
