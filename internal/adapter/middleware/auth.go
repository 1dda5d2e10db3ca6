package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"internship-management-backend/pkg/token"
)

// Context keys set by JWTAuth.
const (
	ContextAccountID = "account_id"
	ContextRole      = "role"
)

// JWTAuth extracts and verifies the Bearer token and injects the caller's
// account id and role into the echo context.
func JWTAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Authorization header format"})
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			c.Set(ContextAccountID, claims.AccountID)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}

// RoleAuth allows the request through only when the authenticated role is
// one of allowedRoles. Must run after JWTAuth.
func RoleAuth(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range allowedRoles {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

// AccountID reads the authenticated account id set by JWTAuth.
func AccountID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(ContextAccountID).(uint64)
	return id, ok
}

// Role reads the authenticated role set by JWTAuth.
func Role(c echo.Context) (string, bool) {
	role, ok := c.Get(ContextRole).(string)
	return role, ok
}
