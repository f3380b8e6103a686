package ports

import (
	"context"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// DocumentStore persists the whole application state as one document.
// Read returns domain.ErrStoreEmpty when nothing has been written yet.
//
// Implementations do not serialise concurrent read-modify-write cycles:
// two writers racing on the same document lose the first update.
type DocumentStore interface {
	Read(ctx context.Context) (*domain.Document, error)
	Write(ctx context.Context, doc *domain.Document) error
	Ping(ctx context.Context) error
}
