package document

import (
	"context"
	"fmt"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// CatalogStore is the product collection. Every call re-reads the full
// document and every mutation rewrites it; there is no cache and no lock.
type CatalogStore struct {
	store ports.DocumentStore
}

func NewCatalogStore(store ports.DocumentStore) *CatalogStore {
	return &CatalogStore{store: store}
}

func (r *CatalogStore) List(ctx context.Context) ([]domain.Product, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (r *CatalogStore) Insert(ctx context.Context, p domain.Product) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}
	doc.Products = append(doc.Products, p)
	return r.write(ctx, doc)
}

func (r *CatalogStore) Update(ctx context.Context, id string, mutate func(*domain.Product) error) (*domain.Product, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.FindProduct(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}

	p := doc.Products[i]
	if err := mutate(&p); err != nil {
		return nil, err
	}
	p.ID = id
	doc.Products[i] = p

	if err := r.write(ctx, doc); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogStore) Delete(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.FindProduct(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}

	removed := doc.Products[i]
	doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)

	if err := r.write(ctx, doc); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (r *CatalogStore) ApplyStock(ctx context.Context, fn func(products []domain.Product) bool) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}
	if !fn(doc.Products) {
		return nil
	}
	return r.write(ctx, doc)
}

func (r *CatalogStore) write(ctx context.Context, doc *domain.Document) error {
	if err := r.store.Write(ctx, doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
