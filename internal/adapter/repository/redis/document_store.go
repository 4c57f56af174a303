package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/budgetbook/internal/domain"
)

// DocumentStore keeps the ledger document under a single Redis key.
type DocumentStore struct {
	client *redis.Client
	key    string
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(client *redis.Client, key string) *DocumentStore {
	return &DocumentStore{
		client: client,
		key:    key,
	}
}

// ReadDocument returns the stored document bytes.
func (s *DocumentStore) ReadDocument(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %w: key %s", domain.ErrStorage, domain.ErrDocumentNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return data, nil
}

// WriteDocument replaces the stored document.
func (s *DocumentStore) WriteDocument(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	return nil
}

// Location describes where the document lives.
func (s *DocumentStore) Location() string {
	return "redis:" + s.key
}
