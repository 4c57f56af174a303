// Package storage opens the ledger repository selected by configuration.
package storage

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/iho/budgetbook/internal/adapter/repository/document"
	"github.com/iho/budgetbook/internal/adapter/repository/file"
	redisRepo "github.com/iho/budgetbook/internal/adapter/repository/redis"
	"github.com/iho/budgetbook/internal/infrastructure/config"
	"github.com/iho/budgetbook/internal/infrastructure/redis"
)

// Ledger is an opened ledger repository and the resources behind it.
type Ledger struct {
	Repository *document.LedgerRepository
	// Redis is set when the redis backend is in use.
	Redis *goredis.Client
}

// Ping checks the backing service. The file backend always answers.
func (l *Ledger) Ping(ctx context.Context) error {
	if l.Redis == nil {
		return nil
	}
	return l.Redis.Ping(ctx).Err()
}

// Close releases the backing connection, if any.
func (l *Ledger) Close() error {
	if l.Redis == nil {
		return nil
	}
	return l.Redis.Close()
}

// Open builds the repository for cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Ledger, error) {
	switch cfg.StorageBackend {
	case config.BackendFile, "":
		store := file.NewDocumentStore(cfg.LedgerFile)
		return &Ledger{Repository: document.NewLedgerRepository(store)}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL})
		if err != nil {
			return nil, err
		}
		store := redisRepo.NewDocumentStore(client, cfg.RedisLedgerKey)
		return &Ledger{Repository: document.NewLedgerRepository(store), Redis: client}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", cfg.StorageBackend, config.BackendFile, config.BackendRedis)
	}
}
