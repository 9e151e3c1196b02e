package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// LoginInput is a dashboard login submission.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued token and the authenticated admin.
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expires_at"`
	Admin     *entity.Admin `json:"admin"`
}

// AdminInput carries the writable fields of an admin account. Password is
// required on create; on update an empty password keeps the current one.
type AdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=8"`
	IsActive bool   `json:"is_active"`
}

// AdminUsecase defines the use cases for dashboard authentication and
// admin account management.
type AdminUsecase interface {
	// Login verifies credentials and opens a session, returning a bearer
	// token the dashboard presents on subsequent requests.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)

	// Logout revokes the session behind the given token. Takes effect
	// immediately; the token is useless afterwards even before its expiry.
	Logout(ctx context.Context, token string) error

	// ValidateSession checks a bearer token against its session row and
	// returns the claims when the session is still active.
	ValidateSession(ctx context.Context, token string) (*service.TokenClaims, error)

	// ListAdmins retrieves every admin account.
	ListAdmins(ctx context.Context) ([]*entity.Admin, error)

	// GetAdmin retrieves an admin account by ID.
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// CreateAdmin creates a new admin account.
	CreateAdmin(ctx context.Context, input *AdminInput) (*entity.Admin, error)

	// UpdateAdmin rewrites an existing admin account.
	UpdateAdmin(ctx context.Context, id uuid.UUID, input *AdminInput) (*entity.Admin, error)

	// DeleteAdmin removes an admin account.
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}
