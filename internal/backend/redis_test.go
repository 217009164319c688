package backend

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// Integration tests against a live Redis; skipped unless REDIS_ADDR is set.
func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis integration test")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}

func TestRedis_SetGetRoundTrip(t *testing.T) {
	client := newRedisClient(t)
	r := NewRedis(client, nil)
	ctx := context.Background()

	v, err := r.Get(ctx, testKey)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, testKey, []byte(`[{"id":"a"}]`)))

	v, err = r.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"a"}]`), v)
}

func TestRedis_WatchFiltersOwnWrites(t *testing.T) {
	client := newRedisClient(t)
	writer := NewRedis(client, nil)
	reader := NewRedis(client, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	writerCh, err := writer.Watch(ctx, testKey)
	require.NoError(t, err)
	readerCh, err := reader.Watch(ctx, testKey)
	require.NoError(t, err)

	require.NoError(t, writer.Set(ctx, testKey, []byte(`[]`)))

	select {
	case <-readerCh:
	case <-time.After(2 * time.Second):
		t.Fatal("reader never observed the change signal")
	}

	select {
	case <-writerCh:
		t.Fatal("writer observed its own change signal")
	case <-time.After(100 * time.Millisecond):
	}
}
