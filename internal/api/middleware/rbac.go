package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// RequireAdmin rejects any principal whose role is not admin. The switch is
// exhaustive over the Role enum; unknown values fall through to forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
			}

			switch user.Role {
			case domain.RoleAdmin:
				return next(c)
			case domain.RoleUser:
				return echo.NewHTTPError(http.StatusForbidden, "Not authorized as an admin")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "Not authorized as an admin")
			}
		}
	}
}
