package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingInput carries one key/value pair to store.
type SettingInput struct {
	Key   string `json:"key" validate:"required,max=120"`
	Value string `json:"value" validate:"required"`
}

// SettingsUsecase defines the use cases for store configuration, covering
// contact details and the SEO metadata served to the storefront.
type SettingsUsecase interface {
	// GetSettings retrieves every setting as a key/value map.
	GetSettings(ctx context.Context) (map[string]string, error)

	// GetSetting retrieves a single setting by key.
	GetSetting(ctx context.Context, key string) (*entity.Setting, error)

	// PutSetting creates or replaces the value for a key.
	PutSetting(ctx context.Context, input *SettingInput) (*entity.Setting, error)

	// PutSettings stores several key/value pairs. Pairs are written
	// independently; the first failure aborts the remainder.
	PutSettings(ctx context.Context, inputs []*SettingInput) error

	// DeleteSetting removes a setting by key.
	DeleteSetting(ctx context.Context, key string) error
}
