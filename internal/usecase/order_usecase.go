package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one line of a checkout submission. Price is the unit
// price the storefront displayed; the server re-prices against the catalog
// before accepting.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Price     string    `json:"price" validate:"required"`
}

// CreateOrderInput is a checkout submission.
type CreateOrderInput struct {
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerPhone   string            `json:"customer_phone" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string            `json:"delivery_address" validate:"required"`
	Notes           string            `json:"notes"`
	TotalAmount     string            `json:"total_amount" validate:"required"`
	Items           []*OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// CustomerInfoInput carries the editable customer-facing fields of an order.
type CustomerInfoInput struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	Notes           string `json:"notes"`
}

// OrderUsecase defines the use cases for checkout and order management.
type OrderUsecase interface {
	// CreateOrder validates a checkout submission and persists the order with
	// its items in one transaction. The order total is recomputed server-side
	// from the submitted lines and must match the claimed total to the cent.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order with its items.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves orders newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.Order, error)

	// GetOrderStats computes the dashboard header figures.
	GetOrderStats(ctx context.Context) (*entity.OrderStats, error)

	// UpdateOrderStatus sets an order's status. Any of the five statuses may
	// be set from any other, including re-setting the current one.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateCustomerInfo rewrites the customer-facing fields of an order.
	UpdateCustomerInfo(ctx context.Context, id uuid.UUID, input *CustomerInfoInput) error

	// DeleteOrder removes an order and its items in one transaction.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
