package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStats summarizes the order set for the dashboard header cards.
// Revenue intentionally includes every status, cancelled orders included.
type OrderStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	PendingOrders int     `json:"pending_orders"`
}

// OrderAnalytics extends OrderStats with derived profit and growth figures.
// Profit uses the configured fallback margin; growth compares the current
// calendar month against the same relative window of the prior month.
type OrderAnalytics struct {
	OrderStats
	TotalProfit     float64 `json:"total_profit"`
	DeliveredOrders int     `json:"delivered_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	MonthlyGrowth   float64 `json:"monthly_growth"`
}

// ProductAnalytic is the per-product sales rollup, computed on demand from
// order items. Revenue uses the snapshotted line-item prices; profit applies
// the per-unit margin derived from the product's current price and cost.
// AverageOrderValue is revenue per unit sold (TotalRevenue / TotalSales).
// Because the rollup reads snapshots, products since deleted or deactivated
// still appear while their orders remain in the scan window.
type ProductAnalytic struct {
	ProductID         uuid.UUID `json:"product_id"`
	Name              string    `json:"name"`
	TotalSales        int       `json:"total_sales"`
	TotalRevenue      float64   `json:"total_revenue"`
	TotalProfit       float64   `json:"total_profit"`
	AverageOrderValue float64   `json:"average_order_value"`
}

// DailyStat is one calendar-day bucket of the trailing daily rollup.
type DailyStat struct {
	Date    time.Time `json:"date"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
	Profit  float64   `json:"profit"`
}
