package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

var errWriteFailed = errors.New("write failed")

type stubCredentials struct {
	users map[string]domain.User
}

func (r *stubCredentials) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// stubCatalog mirrors the whole-document repository on a plain slice.
type stubCatalog struct {
	products  []domain.Product
	failWrite bool
	writes    int
}

func (r *stubCatalog) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubCatalog) Insert(_ context.Context, p domain.Product) error {
	if r.failWrite {
		return errWriteFailed
	}
	r.writes++
	r.products = append(r.products, p)
	return nil
}

func (r *stubCatalog) Update(_ context.Context, id string, mutate func(*domain.Product) error) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		p := r.products[i]
		if err := mutate(&p); err != nil {
			return nil, err
		}
		p.ID = id
		if r.failWrite {
			return nil, errWriteFailed
		}
		r.writes++
		r.products[i] = p
		return &p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubCatalog) Delete(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			removed := r.products[i]
			r.writes++
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubCatalog) ApplyStock(_ context.Context, fn func([]domain.Product) bool) error {
	products := append([]domain.Product(nil), r.products...)
	if !fn(products) {
		return nil
	}
	if r.failWrite {
		return errWriteFailed
	}
	r.writes++
	r.products = products
	return nil
}

type stubAssets struct {
	stored    []string
	deleted   []string
	deleteErr error
}

func (a *stubAssets) Store(_ context.Context, upload ports.Upload) (string, error) {
	if _, err := io.ReadAll(upload.Content); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("/uploads/image-%d-1.png", len(a.stored)+1)
	a.stored = append(a.stored, ref)
	return ref, nil
}

func (a *stubAssets) TryDelete(_ context.Context, ref string) error {
	a.deleted = append(a.deleted, ref)
	return a.deleteErr
}

// memDocuments is an in-memory DocumentStore.
type memDocuments struct {
	doc    *domain.Document
	writes int
}

func (s *memDocuments) Read(_ context.Context) (*domain.Document, error) {
	if s.doc == nil {
		return nil, domain.ErrStoreEmpty
	}
	return s.doc, nil
}

func (s *memDocuments) Write(_ context.Context, doc *domain.Document) error {
	s.writes++
	s.doc = doc
	return nil
}

func (s *memDocuments) Ping(_ context.Context) error { return nil }
