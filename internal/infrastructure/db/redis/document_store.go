package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

const defaultKey = "inventory:document"

// DocumentStore keeps the application document as JSON under one key.
// The key is overwritten with SET on every write and never expires.
type DocumentStore struct {
	client *redis.Client
	key    string
}

func NewDocumentStore(client *redis.Client, key string) *DocumentStore {
	if key == "" {
		key = defaultKey
	}
	return &DocumentStore{client: client, key: key}
}

func (s *DocumentStore) Read(ctx context.Context) (*domain.Document, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrStoreEmpty
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return &doc, nil
}

func (s *DocumentStore) Write(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
