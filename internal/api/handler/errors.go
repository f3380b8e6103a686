package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// StatusFor maps a domain error to its HTTP status and public message.
// ok is false for errors that are not part of the domain taxonomy.
func StatusFor(err error) (code int, msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required", true
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "invalid or expired token", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access denied: admins only", true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "cannot find user", true
	}
	return 0, "", false
}

// toHTTPError converts domain errors into echo errors carrying the cause.
// Anything else is returned untouched for the central error handler.
func toHTTPError(err error) error {
	if code, msg, ok := StatusFor(err); ok {
		return echo.NewHTTPError(code, msg).SetInternal(err)
	}
	return err
}
