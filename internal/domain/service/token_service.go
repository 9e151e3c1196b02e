package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the validated identity extracted from a bearer token.
type TokenClaims struct {
	AdminID   uuid.UUID // Admin the token was issued to.
	SessionID uuid.UUID // Session row backing this token.
}

// TokenService defines the interface for generating and validating admin
// bearer tokens. Tokens identify a session; whether that session is still
// active is checked against the session store, so logout takes effect
// immediately rather than at token expiry.
type TokenService interface {
	// GenerateToken creates a signed token for the given admin session.
	GenerateToken(adminID, sessionID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
