package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// currentUser extracts the principal injected by the Auth middleware.
// A missing principal means the middleware did not run; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
	}
	return user, nil
}
