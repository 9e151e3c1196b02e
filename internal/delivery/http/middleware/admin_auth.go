package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by the admin auth middleware.
const (
	KeyAdminID   = "admin_id"
	KeySessionID = "session_id"
)

// AdminAuthMiddleware gates the dashboard routes on a live admin session.
type AdminAuthMiddleware struct {
	adminUsecase usecase.AdminUsecase
}

// NewAdminAuthMiddleware is the constructor for AdminAuthMiddleware.
func NewAdminAuthMiddleware(adminUsecase usecase.AdminUsecase) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{adminUsecase: adminUsecase}
}

// Authenticate validates the bearer token and its backing session. The token
// signature alone is not enough; a revoked or expired session row rejects
// the request even before token expiry.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return response.Unauthorized(c, "SESSION_INVALID", "Missing or malformed Authorization header")
		}

		claims, err := m.adminUsecase.ValidateSession(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "SESSION_INVALID", "Invalid or expired session")
		}

		c.Set(KeyAdminID, claims.AdminID)
		c.Set(KeySessionID, claims.SessionID)

		return next(c)
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
