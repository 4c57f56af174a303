package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/budgetbook/internal/domain"
)

// Config holds the connection settings for the ledger store.
type Config struct {
	URL         string
	DialTimeout time.Duration
}

// NewClient opens a Redis client for the ledger store and checks it answers.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis URL: %w", domain.ErrStorage, err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping redis at %s: %w", domain.ErrStorage, opts.Addr, err)
	}

	return client, nil
}
