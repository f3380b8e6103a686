package ports

import (
	"context"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// CredentialStore looks up seeded console users.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
