package ports

import (
	"context"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// CatalogRepository is the product collection. Each method is a single
// whole-document read-modify-write.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	// Update applies mutate to the product with the given id and persists the
	// result. Returns domain.ErrProductNotFound without writing if id is unknown.
	// If mutate returns an error nothing is written.
	Update(ctx context.Context, id string, mutate func(*domain.Product) error) (*domain.Product, error)
	// Delete removes the product and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.Product, error)
	// ApplyStock runs fn over every product in one read-modify-write.
	ApplyStock(ctx context.Context, fn func(products []domain.Product) bool) error
}
