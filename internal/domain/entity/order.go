package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order. Any status may be
// set from any other; there is no enforced transition graph.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// Order represents a checkout submission together with its line items.
type Order struct {
	ID              uuid.UUID    `json:"id"`               // The unique identifier for the order.
	CustomerName    string       `json:"customer_name"`    // Name supplied at checkout.
	CustomerPhone   string       `json:"customer_phone"`   // Contact phone, required.
	CustomerEmail   string       `json:"customer_email"`   // Contact email, optional.
	DeliveryAddress string       `json:"delivery_address"` // Free-form delivery address.
	Notes           string       `json:"notes"`            // Optional customer notes.
	TotalAmount     string       `json:"total_amount"`     // Order total as a numeric string.
	Status          OrderStatus  `json:"status"`           // Current lifecycle status.
	Items           []*OrderItem `json:"items,omitempty"`  // Line items; populated on reads that request them.
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is a line item of an order. Price and product name are snapshots
// taken at order time so later product edits never rewrite order history.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`           // The unique identifier for the line item.
	OrderID     uuid.UUID `json:"order_id"`     // The order this item belongs to.
	ProductID   uuid.UUID `json:"product_id"`   // The product that was ordered.
	ProductName string    `json:"product_name"` // Product name snapshot at order time.
	Quantity    int       `json:"quantity"`     // Units ordered, at least 1.
	Price       string    `json:"price"`        // Unit price snapshot as a numeric string.
}
