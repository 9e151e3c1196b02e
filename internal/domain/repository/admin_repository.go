package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for admin persistence.
var (
	// ErrAdminNotFound is returned when an admin account is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
)

// AdminRepository defines the interface for admin-account database operations.
type AdminRepository interface {
	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// FindAll retrieves every admin account.
	FindAll(ctx context.Context) ([]*entity.Admin, error)

	// Update modifies an existing admin account.
	Update(ctx context.Context, admin *entity.Admin) error

	// Delete removes an admin account by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines the interface for admin-session database operations.
type SessionRepository interface {
	// Create persists a new session, representing one dashboard login.
	Create(ctx context.Context, session *entity.AdminSession) error

	// FindByTokenHash retrieves a session by the hash of its bearer token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error)

	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions whose expiry has passed. Housekeeping,
	// called opportunistically on login.
	DeleteExpired(ctx context.Context) error
}
