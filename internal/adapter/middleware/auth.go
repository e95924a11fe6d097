package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Identity arrives from the external identity provider as trusted headers
// set by the edge. This service only gates on them; it never authenticates.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"

	ctxUserID   = "auth.user_id"
	ctxUserRole = "auth.user_role"
)

// RequireUser rejects unauthenticated requests and stashes the identity in
// the echo context for handlers downstream.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			c.Set(ctxUserID, uid)
			c.Set(ctxUserRole, strings.TrimSpace(c.Request().Header.Get(HeaderUserRole)))
			return next(c)
		}
	}
}

// RequireAdmin runs after RequireUser and denies everyone without the
// admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}

func UserID(c echo.Context) string {
	v, _ := c.Get(ctxUserID).(string)
	return v
}

func Role(c echo.Context) string {
	v, _ := c.Get(ctxUserRole).(string)
	return v
}
