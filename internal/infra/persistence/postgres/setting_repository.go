package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Find retrieves a single setting by key.
func (repo *settingRepository) Find(ctx context.Context, key string) (*entity.Setting, error) {
	var settingM model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return toSettingDomain(&settingM), nil
}

// FindAll retrieves every setting, ordered by key for stable output.
func (repo *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []*model.SettingModel

	if err := repo.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	settings := make([]*entity.Setting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// Upsert creates or replaces the value for a key.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// Delete removes a setting by key.
func (repo *settingRepository) Delete(ctx context.Context, key string) error {
	result := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.SettingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete setting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		Key:       data.Key,
		Value:     data.Value,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSettingDomain(data *entity.Setting) *model.SettingModel {
	if data == nil {
		return nil
	}

	return &model.SettingModel{
		Key:   data.Key,
		Value: data.Value,
	}
}
