package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
// Create and DeleteWithItems touch two tables; run them through the
// TransactionManager so order and items commit or roll back together.
type OrderRepository interface {
	// Create persists an order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders newest first, optionally filtered by status.
	// Items are not loaded.
	List(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.Order, error)

	// FindRecent retrieves the most recent orders with their items, bounded
	// by limit. This is the read path behind every analytics scan.
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)

	// Count returns the number of orders, any status.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of orders in the given status.
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)

	// SumTotalAmount returns the sum of total_amount across all orders,
	// computed database-side. No status filter: cancelled orders count.
	SumTotalAmount(ctx context.Context) (float64, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateCustomerInfo rewrites the customer-facing fields of an order.
	UpdateCustomerInfo(ctx context.Context, order *entity.Order) error

	// DeleteWithItems removes the order's items and then the order itself.
	DeleteWithItems(ctx context.Context, id uuid.UUID) error
}
