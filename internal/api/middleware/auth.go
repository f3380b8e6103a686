package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/api/metrics"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

const identityKey = "identity"

// Auth validates the bearer token and injects the caller identity into the
// context. A missing token answers 401, a token that fails verification 403.
func Auth(guard ports.AccessGuard, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

			identity, err := guard.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return reject(c, log, http.StatusUnauthorized, "unauthenticated", err)
				}
				return reject(c, log, http.StatusForbidden, "invalid_token", err)
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity stores the caller identity on the context.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity stored by Auth, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// bearerToken extracts the token of a "Bearer <token>" header value.
// Any other shape yields an empty token.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func reject(c echo.Context, log zerolog.Logger, status int, reason string, err error) error {
	metrics.GuardRejectionsTotal.WithLabelValues(reason).Inc()
	log.Warn().
		Str("reason", reason).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("ip", c.RealIP()).
		Msg("request rejected by access guard")
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}
