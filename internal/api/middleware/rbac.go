package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// RequireRole enforces that the identity injected by Auth holds role.
func RequireRole(guard ports.AccessGuard, role string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := guard.Authorize(IdentityFrom(c), role); err != nil {
				return reject(c, log, http.StatusForbidden, "forbidden", err)
			}
			return next(c)
		}
	}
}
