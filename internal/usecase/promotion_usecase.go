package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PromotionInput carries the writable fields of a promotional banner.
type PromotionInput struct {
	MessageEn string     `json:"message_en" validate:"required"`
	MessageFr string     `json:"message_fr" validate:"required"`
	MessageAr string     `json:"message_ar" validate:"required"`
	IsActive  bool       `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

// PromotionUsecase defines the use cases for promotional banners.
type PromotionUsecase interface {
	// ActivePromotions retrieves the banners visible to shoppers right now.
	ActivePromotions(ctx context.Context) ([]*entity.Promotion, error)

	// ListPromotions retrieves every promotion for the dashboard.
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)

	// GetPromotion retrieves a promotion by ID.
	GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// CreatePromotion creates a new promotion.
	CreatePromotion(ctx context.Context, input *PromotionInput) (*entity.Promotion, error)

	// UpdatePromotion rewrites an existing promotion.
	UpdatePromotion(ctx context.Context, id uuid.UUID, input *PromotionInput) (*entity.Promotion, error)

	// DeletePromotion removes a promotion.
	DeletePromotion(ctx context.Context, id uuid.UUID) error
}
