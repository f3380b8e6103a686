package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/inventory-console/inventory-api/internal/api/middleware"
	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// caller returns the identity injected by the Auth middleware. Routes
// without Auth yield nil, which the services reject as forbidden.
func caller(c echo.Context) *domain.Identity {
	return middleware.IdentityFrom(c)
}
