package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type promotionService struct {
	promotionRepo repository.PromotionRepository
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
}

// NewPromotionService creates a new promotion service instance
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: params.PromotionRepo,
	}
}

// ActivePromotions retrieves the banners visible to shoppers right now
func (s *promotionService) ActivePromotions(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := s.promotionRepo.FindActive(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active promotions")
	}

	return promotions, nil
}

// ListPromotions retrieves every promotion for the dashboard
func (s *promotionService) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	promotions, err := s.promotionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}

// GetPromotion retrieves a promotion by ID
func (s *promotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to get promotion")
	}

	return promotion, nil
}

// CreatePromotion creates a new promotion
func (s *promotionService) CreatePromotion(ctx context.Context, input *usecase.PromotionInput) (*entity.Promotion, error) {
	promotion, err := promotionFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// UpdatePromotion rewrites an existing promotion
func (s *promotionService) UpdatePromotion(ctx context.Context, id uuid.UUID, input *usecase.PromotionInput) (*entity.Promotion, error) {
	promotion, err := promotionFromInput(input)
	if err != nil {
		return nil, err
	}
	promotion.ID = id

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, err
	}

	return s.GetPromotion(ctx, id)
}

// DeletePromotion removes a promotion
func (s *promotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return domainerrors.ErrPromotionNotFound
		}

		return err
	}

	return nil
}

// promotionFromInput builds a Promotion entity, validating the time window
func promotionFromInput(input *usecase.PromotionInput) (*entity.Promotion, error) {
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("promotion window ends before it starts")
	}

	return &entity.Promotion{
		MessageEn: input.MessageEn,
		MessageFr: input.MessageFr,
		MessageAr: input.MessageAr,
		IsActive:  input.IsActive,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
	}, nil
}
