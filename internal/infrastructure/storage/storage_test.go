package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/infrastructure/config"
)

func TestOpenFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	l, err := Open(context.Background(), &config.Config{StorageBackend: config.BackendFile, LedgerFile: path})
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, path, l.Repository.Location())
	assert.NoError(t, l.Ping(context.Background()))

	_, err = l.Repository.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestOpenRedisBackend(t *testing.T) {
	s := miniredis.RunT(t)
	ctx := context.Background()

	l, err := Open(ctx, &config.Config{
		StorageBackend: config.BackendRedis,
		RedisURL:       fmt.Sprintf("redis://%s", s.Addr()),
		RedisLedgerKey: "budgetbook:test",
	})
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, "redis:budgetbook:test", l.Repository.Location())
	assert.NoError(t, l.Ping(ctx))

	require.NoError(t, l.Repository.Save(ctx, domain.NewLedger()))
	assert.True(t, s.Exists("budgetbook:test"))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageBackend: "s3"})
	assert.Error(t, err)
}
