package middleware

import (
	"net/http"
	"strings"

	"homestay/internal/domain/policy"
	"homestay/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID  = "userID"
	contextKeyIsAdmin = "isAdmin"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set actor identity on the context for handlers to use
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyIsAdmin, claims.IsAdmin)

		return next(c)
	}
}

// RequireAdmin checks the admin claim set by Authenticate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, ok := c.Get(contextKeyIsAdmin).(bool)
		if !ok || !isAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin privileges required"})
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user's id from the echo context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetActor builds the policy actor from the claims Authenticate stored.
func GetActor(c echo.Context) (policy.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return policy.Actor{}, false
	}
	isAdmin, _ := c.Get(contextKeyIsAdmin).(bool)

	return policy.Actor{ID: userID, IsAdmin: isAdmin}, true
}
