package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerName    string            `gorm:"type:text;not null"`
	CustomerPhone   string            `gorm:"type:text;not null"`
	CustomerEmail   string            `gorm:"type:text"`
	DeliveryAddress string            `gorm:"type:text;not null"`
	Notes           string            `gorm:"type:text"`
	TotalAmount     string            `gorm:"type:decimal(10,2);not null"`
	Status          string            `gorm:"type:text;not null;default:'pending';index"`
	Items           []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time         `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Price and product name are snapshots taken at order time; they are never
// updated when the product changes.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:text;not null"`
	Quantity    int       `gorm:"not null"`
	Price       string    `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
