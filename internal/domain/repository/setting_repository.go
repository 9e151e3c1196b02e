package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingNotFound is returned when a setting key does not exist.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines the interface for store-settings database operations.
type SettingRepository interface {
	// Find retrieves a single setting by key.
	Find(ctx context.Context, key string) (*entity.Setting, error)

	// FindAll retrieves every setting.
	FindAll(ctx context.Context) ([]*entity.Setting, error)

	// Upsert creates or replaces the value for a key.
	Upsert(ctx context.Context, setting *entity.Setting) error

	// Delete removes a setting by key.
	Delete(ctx context.Context, key string) error
}
