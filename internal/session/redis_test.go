package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a live Redis and run only when REDIS_ADDR is set.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	opts := DefaultRedisOptions(addr, "", 0)
	opts.ConnectTimeout = 3 * time.Second

	client, err := NewRedisClient(context.Background(), opts, logger.Nop())
	require.NoError(t, err)

	store := NewRedisStore(client, time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	s := New("redis-test-" + time.Now().Format("150405.000000"))
	s.RateLimit = models.RateLimitState{SearchCount: 3}

	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.RateLimit.SearchCount)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	opts := DefaultRedisOptions("127.0.0.1:1", "", 0)
	opts.ConnectTimeout = 300 * time.Millisecond
	opts.RetryInterval = 50 * time.Millisecond
	opts.PingTimeout = 50 * time.Millisecond

	_, err := NewRedisClient(context.Background(), opts, logger.Nop())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
