// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a product category shown in the storefront navigation.
// Display names and descriptions are stored per supported locale.
type Category struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for the category.
	Slug          string    `json:"slug"`           // URL-safe identifier used by the storefront.
	NameEn        string    `json:"name_en"`        // English display name.
	NameFr        string    `json:"name_fr"`        // French display name.
	NameAr        string    `json:"name_ar"`        // Arabic display name.
	DescriptionEn string    `json:"description_en"` // English description.
	DescriptionFr string    `json:"description_fr"` // French description.
	DescriptionAr string    `json:"description_ar"` // Arabic description.
	ImageURL      string    `json:"image_url"`      // Category banner image.
	SortOrder     int       `json:"sort_order"`     // Position in storefront navigation.
	IsActive      bool      `json:"is_active"`      // Inactive categories are hidden from shoppers.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
