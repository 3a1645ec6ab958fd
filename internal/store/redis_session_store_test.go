package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haus/internal/domain"
	"haus/internal/store"
)

// setupTestRedis connects to HAUS_TEST_REDIS_ADDR.
// Tests are skipped if it is unset or Redis is not reachable.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("HAUS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HAUS_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSessionStore_SetGetClear(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	key := "haus:test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	s := store.NewRedisSessionStoreWithKey(client, key)

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "alice"))
	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Username("alice"), got)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "session slot must not expire")

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionStore_RejectsEmptyUsername(t *testing.T) {
	client := setupTestRedis(t)
	s := store.NewRedisSessionStoreWithKey(client, "haus:test:"+uuid.NewString())

	require.Error(t, s.Set(context.Background(), ""))
}
