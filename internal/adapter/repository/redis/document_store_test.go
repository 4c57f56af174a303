package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/budgetbook/internal/domain"
)

func TestDocumentStoreWriteAndRead(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewDocumentStore(client, "budgetbook:ledger")
	ctx := context.Background()

	if err := store.WriteDocument(ctx, []byte(`{"expenses":[],"incomes":[]}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := store.ReadDocument(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if string(data) != `{"expenses":[],"incomes":[]}` {
		t.Fatalf("unexpected document %s", data)
	}

	if store.Location() != "redis:budgetbook:ledger" {
		t.Fatalf("unexpected location %s", store.Location())
	}
}

func TestDocumentStoreOverwrites(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewDocumentStore(client, "ledger")
	ctx := context.Background()

	_ = store.WriteDocument(ctx, []byte("first"))
	_ = store.WriteDocument(ctx, []byte("second"))

	data, err := store.ReadDocument(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected second, got %s", data)
	}
}

func TestDocumentStoreMissingKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	_, err := NewDocumentStore(client, "absent").ReadDocument(context.Background())
	if !errors.Is(err, domain.ErrDocumentNotFound) || !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage and ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentStoreConnectionFailure(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()
	mr.Close()

	store := NewDocumentStore(client, "ledger")

	if err := store.WriteDocument(context.Background(), []byte("x")); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage on write, got %v", err)
	}

	_, err := store.ReadDocument(context.Background())
	if !errors.Is(err, domain.ErrStorage) || errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected plain ErrStorage on read, got %v", err)
	}
}
