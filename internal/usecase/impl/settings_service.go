package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingRepo repository.SettingRepository
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingRepo repository.SettingRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingRepo: params.SettingRepo,
	}
}

// GetSettings retrieves every setting as a key/value map
func (s *settingsService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	return values, nil
}

// GetSetting retrieves a single setting by key
func (s *settingsService) GetSetting(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := s.settingRepo.Find(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, domainerrors.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to get setting")
	}

	return setting, nil
}

// PutSetting creates or replaces the value for a key
func (s *settingsService) PutSetting(ctx context.Context, input *usecase.SettingInput) (*entity.Setting, error) {
	setting := &entity.Setting{
		Key:   input.Key,
		Value: input.Value,
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

// PutSettings stores several key/value pairs, aborting on the first failure
func (s *settingsService) PutSettings(ctx context.Context, inputs []*usecase.SettingInput) error {
	for _, input := range inputs {
		if _, err := s.PutSetting(ctx, input); err != nil {
			return err
		}
	}

	return nil
}

// DeleteSetting removes a setting by key
func (s *settingsService) DeleteSetting(ctx context.Context, key string) error {
	if err := s.settingRepo.Delete(ctx, key); err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return domainerrors.ErrSettingNotFound
		}

		return err
	}

	return nil
}
