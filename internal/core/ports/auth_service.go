package ports

import (
	"context"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// AccessGuard validates session tokens and enforces role permissions.
// Call sites depend on this interface only, so a revocation check can be
// added behind it later.
type AccessGuard interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
	Authorize(identity *domain.Identity, requiredRole string) error
}
