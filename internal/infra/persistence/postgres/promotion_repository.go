package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// Create persists a new promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	if err := repo.db.WithContext(ctx).Create(promotionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.CreatedAt = promotionM.CreatedAt
	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// FindByID retrieves a promotion by its unique ID.
func (repo *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promotionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by ID")
	}

	return toPromotionDomain(&promotionM), nil
}

// FindAll retrieves every promotion, newest first.
func (repo *promotionRepository) FindAll(ctx context.Context) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// FindActive retrieves promotions visible at the given time. NULL window
// bounds mean unbounded on that side.
func (repo *promotionRepository) FindActive(ctx context.Context, now time.Time) ([]*entity.Promotion, error) {
	var promotionModels []*model.PromotionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		Find(&promotionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionModels))
	for _, promotionM := range promotionModels {
		promotions = append(promotions, toPromotionDomain(promotionM))
	}

	return promotions, nil
}

// Update modifies an existing promotion.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)

	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Where("id = ?", promotion.ID).
		Updates(map[string]any{
			"message_en": promotionM.MessageEn,
			"message_fr": promotionM.MessageFr,
			"message_ar": promotionM.MessageAr,
			"is_active":  promotionM.IsActive,
			"starts_at":  promotionM.StartsAt,
			"ends_at":    promotionM.EndsAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// Delete removes a promotion by its ID.
func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromotionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPromotionDomain converts a GORM PromotionModel to a domain Promotion entity.
func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:        data.ID,
		MessageEn: data.MessageEn,
		MessageFr: data.MessageFr,
		MessageAr: data.MessageAr,
		IsActive:  data.IsActive,
		StartsAt:  data.StartsAt,
		EndsAt:    data.EndsAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPromotionDomain converts a domain Promotion entity to a GORM PromotionModel.
func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:        data.ID,
		MessageEn: data.MessageEn,
		MessageFr: data.MessageFr,
		MessageAr: data.MessageAr,
		IsActive:  data.IsActive,
		StartsAt:  data.StartsAt,
		EndsAt:    data.EndsAt,
	}
}
