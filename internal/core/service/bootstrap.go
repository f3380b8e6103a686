package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

var seedUsers = []struct {
	username string
	role     string
}{
	{"admin", domain.RoleAdmin},
	{"manager", domain.RoleManager},
}

// SeedDocument builds the initial document: the two seed accounts with
// bcrypt-hashed passwords and an empty catalog.
func SeedDocument() (*domain.Document, error) {
	doc := &domain.Document{Products: []domain.Product{}}
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPasswords[u.username]), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		doc.Users = append(doc.Users, domain.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
		})
	}
	return doc, nil
}

// Bootstrap writes the seed document when the store has never been written.
// An existing document is left untouched.
func Bootstrap(ctx context.Context, store ports.DocumentStore, log zerolog.Logger) error {
	_, err := store.Read(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStoreEmpty) {
		return fmt.Errorf("bootstrap: %w", err)
	}

	doc, err := SeedDocument()
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if err := store.Write(ctx, doc); err != nil {
		return fmt.Errorf("bootstrap: write seed: %w", err)
	}

	log.Info().Int("users", len(doc.Users)).Msg("seed document written")
	return nil
}
