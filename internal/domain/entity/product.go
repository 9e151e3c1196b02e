package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable item. Prices are kept as numeric strings so
// the stored value round-trips exactly; arithmetic happens only at the edges
// that need it (checkout validation, analytics).
type Product struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for the product.
	CategoryID    uuid.UUID `json:"category_id"`    // The category this product belongs to.
	Slug          string    `json:"slug"`           // URL-safe identifier used by the storefront.
	NameEn        string    `json:"name_en"`        // English display name.
	NameFr        string    `json:"name_fr"`        // French display name.
	NameAr        string    `json:"name_ar"`        // Arabic display name.
	DescriptionEn string    `json:"description_en"` // English description.
	DescriptionFr string    `json:"description_fr"` // French description.
	DescriptionAr string    `json:"description_ar"` // Arabic description.
	Price         string    `json:"price"`          // Unit price as a numeric string, e.g. "19.99".
	CostPrice     string    `json:"cost_price"`     // Optional purchase cost; empty when unknown.
	SalePrice     string    `json:"sale_price"`     // Optional discounted price; non-empty means on sale.
	ImageURL      string    `json:"image_url"`      // Primary product image.
	Stock         int       `json:"stock"`          // Units available.
	IsFeatured    bool      `json:"is_featured"`    // Featured products appear on the home page.
	IsActive      bool      `json:"is_active"`      // Inactive products are hidden from shoppers.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OnSale reports whether the product currently carries a discounted price.
func (p *Product) OnSale() bool {
	return p.SalePrice != ""
}
