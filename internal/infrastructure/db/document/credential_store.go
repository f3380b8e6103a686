// Package document implements the credential and catalog repositories on
// top of a whole-document store.
package document

import (
	"context"
	"fmt"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

type CredentialStore struct {
	store ports.DocumentStore
}

func NewCredentialStore(store ports.DocumentStore) *CredentialStore {
	return &CredentialStore{store: store}
}

// FindByUsername returns a copy of the stored user.
func (r *CredentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := doc.FindUser(username)
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	user := *u
	return &user, nil
}
