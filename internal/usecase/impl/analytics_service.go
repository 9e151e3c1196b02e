package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderScanLimit     = 1000
	defaultMarginRate         = 0.30
	defaultProductReportLimit = 10
)

type analyticsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	scanLimit   int
	marginRate  float64
	logger      *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	scanLimit := defaultOrderScanLimit
	marginRate := defaultMarginRate
	if params.Config.Analytics != nil {
		if params.Config.Analytics.OrderScanLimit > 0 {
			scanLimit = params.Config.Analytics.OrderScanLimit
		}
		if params.Config.Analytics.MarginRate > 0 {
			marginRate = params.Config.Analytics.MarginRate
		}
	}

	return &analyticsService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		scanLimit:   scanLimit,
		marginRate:  marginRate,
		logger:      params.Logger,
	}
}

// OrderAnalytics computes revenue, profit, status counts and month-over-month
// growth. Header figures come from database aggregates over the whole table;
// profit and growth come from a bounded scan of the most recent orders.
func (s *analyticsService) OrderAnalytics(ctx context.Context) (*entity.OrderAnalytics, error) {
	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalRevenue, err := s.orderRepo.SumTotalAmount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum order totals")
	}

	pendingOrders, err := s.orderRepo.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	orders, err := s.orderRepo.FindRecent(ctx, s.scanLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan recent orders")
	}

	costs := s.productCosts(ctx)

	analytics := &entity.OrderAnalytics{
		OrderStats: entity.OrderStats{
			TotalOrders:   int(totalOrders),
			TotalRevenue:  roundCents(totalRevenue),
			PendingOrders: int(pendingOrders),
		},
	}
	if totalOrders > 0 {
		analytics.AvgOrderValue = roundCents(totalRevenue / float64(totalOrders))
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var totalProfit, thisMonthRevenue, lastMonthRevenue float64
	skipped := 0
	for _, order := range orders {
		switch order.Status {
		case entity.OrderStatusDelivered:
			analytics.DeliveredOrders++
		case entity.OrderStatusCancelled:
			analytics.CancelledOrders++
		}

		amount, err := parseAmount(order.TotalAmount)
		if err != nil {
			skipped++

			continue
		}

		created := order.CreatedAt.UTC()
		if !created.Before(monthStart) {
			thisMonthRevenue += amount
		} else if !created.Before(lastMonthStart) {
			lastMonthRevenue += amount
		}

		profit, err := s.orderProfit(order, costs)
		if err != nil {
			skipped++

			continue
		}
		totalProfit += profit
	}
	if skipped > 0 {
		s.logger.WarnContext(ctx, "skipped unparsable orders in analytics scan",
			slog.Int("skipped", skipped), slog.Int("scanned", len(orders)))
	}

	analytics.TotalProfit = roundCents(totalProfit)
	if lastMonthRevenue > 0 {
		analytics.MonthlyGrowth = roundCents((thisMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100)
	}

	return analytics, nil
}

// ProductAnalytics computes per-product sales rollups from the snapshotted
// line items of the most recent orders. Products that never sold in the
// window are omitted.
func (s *analyticsService) ProductAnalytics(ctx context.Context, sortBy string, limit int) ([]*entity.ProductAnalytic, error) {
	if limit <= 0 {
		limit = defaultProductReportLimit
	}

	orders, err := s.orderRepo.FindRecent(ctx, s.scanLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan recent orders")
	}

	costs := s.productCosts(ctx)

	rollups := make(map[uuid.UUID]*entity.ProductAnalytic)
	skipped := 0
	for _, order := range orders {
		for _, item := range order.Items {
			unitPrice, err := parseAmount(item.Price)
			if err != nil {
				skipped++

				continue
			}

			analytic, ok := rollups[item.ProductID]
			if !ok {
				analytic = &entity.ProductAnalytic{
					ProductID: item.ProductID,
					Name:      item.ProductName,
				}
				rollups[item.ProductID] = analytic
			}

			analytic.TotalSales += item.Quantity
			analytic.TotalRevenue += unitPrice * float64(item.Quantity)
			analytic.TotalProfit += s.lineProfit(unitPrice, item.Quantity, costs[item.ProductID])
		}
	}
	if skipped > 0 {
		s.logger.WarnContext(ctx, "skipped unparsable line items in product analytics",
			slog.Int("skipped", skipped))
	}

	analytics := make([]*entity.ProductAnalytic, 0, len(rollups))
	for _, analytic := range rollups {
		if analytic.TotalSales == 0 {
			continue
		}
		analytic.TotalRevenue = roundCents(analytic.TotalRevenue)
		analytic.TotalProfit = roundCents(analytic.TotalProfit)
		analytic.AverageOrderValue = roundCents(analytic.TotalRevenue / float64(analytic.TotalSales))
		analytics = append(analytics, analytic)
	}

	sort.SliceStable(analytics, func(i, j int) bool {
		switch sortBy {
		case usecase.ProductSortByProfit:
			return analytics[i].TotalProfit > analytics[j].TotalProfit
		case usecase.ProductSortBySales:
			return analytics[i].TotalSales > analytics[j].TotalSales
		default:
			return analytics[i].TotalRevenue > analytics[j].TotalRevenue
		}
	})
	if len(analytics) > limit {
		analytics = analytics[:limit]
	}

	return analytics, nil
}

// DailyStats returns exactly one bucket per calendar day (UTC) for the
// trailing window, oldest first. Days with no orders stay zero-filled.
func (s *analyticsService) DailyStats(ctx context.Context, days int) ([]*entity.DailyStat, error) {
	if days <= 0 {
		days = usecase.DefaultDailyStatsDays
	}
	if days > usecase.MaxDailyStatsDays {
		days = usecase.MaxDailyStatsDays
	}

	orders, err := s.orderRepo.FindRecent(ctx, s.scanLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan recent orders")
	}

	costs := s.productCosts(ctx)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -(days - 1))

	buckets := make(map[time.Time]*entity.DailyStat, days)
	stats := make([]*entity.DailyStat, 0, days)
	for i := 0; i < days; i++ {
		date := windowStart.AddDate(0, 0, i)
		stat := &entity.DailyStat{Date: date}
		buckets[date] = stat
		stats = append(stats, stat)
	}

	skipped := 0
	for _, order := range orders {
		date := order.CreatedAt.UTC().Truncate(24 * time.Hour)
		stat, ok := buckets[date]
		if !ok {
			continue
		}

		amount, err := parseAmount(order.TotalAmount)
		if err != nil {
			skipped++

			continue
		}

		profit, err := s.orderProfit(order, costs)
		if err != nil {
			skipped++

			continue
		}

		stat.Orders++
		stat.Revenue = roundCents(stat.Revenue + amount)
		stat.Profit = roundCents(stat.Profit + profit)
	}
	if skipped > 0 {
		s.logger.WarnContext(ctx, "skipped unparsable orders in daily stats",
			slog.Int("skipped", skipped))
	}

	return stats, nil
}

// productCosts builds a product-ID to cost-price map for profit computation.
// A missing map (catalog read failure) degrades every line to the fallback
// margin rather than failing the report.
func (s *analyticsService) productCosts(ctx context.Context) map[uuid.UUID]string {
	products, err := s.productRepo.FindAll(ctx, 0, 0)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load product costs, using fallback margin",
			slog.Any("error", err))

		return nil
	}

	costs := make(map[uuid.UUID]string, len(products))
	for _, product := range products {
		costs[product.ID] = product.CostPrice
	}

	return costs
}

// orderProfit sums the per-line profit of an order's items.
func (s *analyticsService) orderProfit(order *entity.Order, costs map[uuid.UUID]string) (float64, error) {
	var profit float64
	for _, item := range order.Items {
		unitPrice, err := parseAmount(item.Price)
		if err != nil {
			return 0, err
		}
		profit += s.lineProfit(unitPrice, item.Quantity, costs[item.ProductID])
	}

	return profit, nil
}

// lineProfit computes the profit of one line item. When the product carries a
// usable cost price the per-unit profit is price minus cost; otherwise the
// configured fallback margin of the selling price is assumed.
func (s *analyticsService) lineProfit(unitPrice float64, quantity int, costPrice string) float64 {
	perUnit := unitPrice * s.marginRate
	if costPrice != "" {
		if cost, err := parseAmount(costPrice); err == nil && cost > 0 && cost < unitPrice {
			perUnit = unitPrice - cost
		}
	}

	return perUnit * float64(quantity)
}
