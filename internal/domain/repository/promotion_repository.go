package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrPromotionNotFound is returned when a promotion is not found.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines the interface for promotion-related database operations.
type PromotionRepository interface {
	// Create persists a new promotion.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// FindByID retrieves a promotion by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// FindAll retrieves every promotion, newest first.
	FindAll(ctx context.Context) ([]*entity.Promotion, error)

	// FindActive retrieves promotions visible at the given time.
	FindActive(ctx context.Context, now time.Time) ([]*entity.Promotion, error)

	// Update modifies an existing promotion.
	Update(ctx context.Context, promotion *entity.Promotion) error

	// Delete removes a promotion by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
