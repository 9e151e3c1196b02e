package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Monetary columns are decimals in the database but mapped as strings so
// values round-trip without float drift.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Slug          string    `gorm:"type:text;not null;uniqueIndex"`
	NameEn        string    `gorm:"type:text;not null"`
	NameFr        string    `gorm:"type:text;not null"`
	NameAr        string    `gorm:"type:text;not null"`
	DescriptionEn string    `gorm:"type:text"`
	DescriptionFr string    `gorm:"type:text"`
	DescriptionAr string    `gorm:"type:text"`
	Price         string    `gorm:"type:decimal(10,2);not null"`
	CostPrice     *string   `gorm:"type:decimal(10,2)"`
	SalePrice     *string   `gorm:"type:decimal(10,2)"`
	ImageURL      string    `gorm:"type:text"`
	Stock         int       `gorm:"not null;default:0"`
	IsFeatured    bool      `gorm:"not null;default:false;index"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
