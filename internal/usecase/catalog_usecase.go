// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Default listing limits for the storefront home page sections.
const (
	DefaultFeaturedLimit = 8
	DefaultOnSaleLimit   = 6
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Slug          string `json:"slug" validate:"required,max=120"`
	NameEn        string `json:"name_en" validate:"required"`
	NameFr        string `json:"name_fr" validate:"required"`
	NameAr        string `json:"name_ar" validate:"required"`
	DescriptionEn string `json:"description_en"`
	DescriptionFr string `json:"description_fr"`
	DescriptionAr string `json:"description_ar"`
	ImageURL      string `json:"image_url"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
}

// ProductInput carries the writable fields of a product. Prices are numeric
// strings; cost and sale price may be empty.
type ProductInput struct {
	CategoryID    uuid.UUID `json:"category_id" validate:"required"`
	Slug          string    `json:"slug" validate:"required,max=120"`
	NameEn        string    `json:"name_en" validate:"required"`
	NameFr        string    `json:"name_fr" validate:"required"`
	NameAr        string    `json:"name_ar" validate:"required"`
	DescriptionEn string    `json:"description_en"`
	DescriptionFr string    `json:"description_fr"`
	DescriptionAr string    `json:"description_ar"`
	Price         string    `json:"price" validate:"required"`
	CostPrice     string    `json:"cost_price"`
	SalePrice     string    `json:"sale_price"`
	ImageURL      string    `json:"image_url"`
	Stock         int       `json:"stock" validate:"min=0"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
}

// CatalogUsecase defines the use cases for browsing and managing the catalog.
type CatalogUsecase interface {
	// ListCategories retrieves categories in navigation order. Shopper-facing
	// calls pass activeOnly; the dashboard passes false to see everything.
	ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// GetCategoryBySlug retrieves a category by its URL slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory rewrites an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListProducts retrieves products for the dashboard with pagination,
	// inactive products included.
	ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// ListProductsByCategory retrieves active products of a category.
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// FeaturedProducts retrieves the home page featured section.
	// A non-positive limit falls back to the default.
	FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// OnSaleProducts retrieves the home page sale section.
	// A non-positive limit falls back to the default.
	OnSaleProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductBySlug retrieves a product by its URL slug.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct rewrites an existing product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ProductQR renders a PNG QR code linking to the product's storefront page.
	ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
