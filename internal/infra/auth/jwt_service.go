// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Secret key for signing admin session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Access}, nil
}

// GenerateToken creates a signed token carrying the admin and session IDs.
// The token TTL matches the session TTL; revocation is enforced against the
// session store, not the token itself.
func (s *jwtService) GenerateToken(adminID, sessionID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID.String(),           // Subject (who the token is for)
		"sid": sessionID.String(),         // Session backing this token
		"iat": time.Now().Unix(),          // Issued At
		"exp": time.Now().Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	adminID, err := parseUUIDClaim(mapClaims, "sub")
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUIDClaim(mapClaims, "sid")
	if err != nil {
		return nil, err
	}

	return &service.TokenClaims{AdminID: adminID, SessionID: sessionID}, nil
}

func parseUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, errors.New("missing " + key + " claim")
	}

	return uuid.Parse(raw)
}
