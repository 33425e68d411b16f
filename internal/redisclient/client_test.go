package redisclient

import (
	"context"
	"testing"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Operations(t *testing.T) {
	client := NewClient(testutil.StartRedis(t))
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx).Err())

	t.Run("get missing key returns redis.Nil", func(t *testing.T) {
		err := client.Get(ctx, "test:missing").Err()
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "test:key", "value", time.Minute).Err())

		got, err := client.Get(ctx, "test:key").Result()
		require.NoError(t, err)
		assert.Equal(t, "value", got)

		ttl, err := client.TTL(ctx, "test:key").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("exists and del", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "test:del", "1", 0).Err())

		n, err := client.Exists(ctx, "test:del").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		deleted, err := client.Del(ctx, "test:del").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	assert.NotNil(t, client.PoolStats())
}

func TestClient_UnreachableServer(t *testing.T) {
	raw := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	client := NewClient(raw)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, client.Ping(ctx).Err())
	err := client.Get(ctx, "test:any").Err()
	require.Error(t, err)
	assert.NotErrorIs(t, err, redis.Nil)
}
