// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug retrieves a category by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// FindAll retrieves categories ordered by sort order. When activeOnly is
	// set, hidden categories are excluded.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
