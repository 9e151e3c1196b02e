package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a dashboard operator account.
type Admin struct {
	ID           uuid.UUID `json:"id"`    // The unique identifier for the admin.
	Email        string    `json:"email"` // Login email, unique.
	Name         string    `json:"name"`  // Display name.
	PasswordHash string    `json:"-"`     // bcrypt hash, never serialized.
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminSession represents a single dashboard login. Mutation endpoints are
// gated on an unexpired, unrevoked session belonging to an active admin.
type AdminSession struct {
	ID        uuid.UUID  `json:"id"`         // The unique identifier for the session.
	AdminID   uuid.UUID  `json:"admin_id"`   // The admin this session belongs to.
	TokenHash string     `json:"-"`          // SHA-256 hash of the bearer token.
	ExpiresAt time.Time  `json:"expires_at"` // Hard expiry of the session.
	RevokedAt *time.Time `json:"revoked_at"` // Set on logout; nil while active.
	CreatedAt time.Time  `json:"created_at"`
}

// Active reports whether the session is usable at the given time.
func (s *AdminSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
