package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindFeatured retrieves up to limit active featured products, newest first.
	FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindOnSale retrieves up to limit active products carrying a sale price,
	// newest first.
	FindOnSale(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindByCategory retrieves active products of a category with pagination.
	FindByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// FindAll retrieves products with pagination, newest first. Used by the
	// admin dashboard, so inactive products are included.
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// FindActive retrieves every active product. Used by the analytics rollup.
	FindActive(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
