package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/medora/tenant-seeder/internal/infrastructure/clients/redis"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

func TestNoopLock_AlwaysAcquires(t *testing.T) {
	release, err := NoopLock{}.Acquire(context.Background(), Key("tenant_a"), time.Minute)
	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}

func TestKey_IsScopedPerSchema(t *testing.T) {
	assert.Equal(t, "tenant-seeder:lock:tenant_a", Key("tenant_a"))
	assert.NotEqual(t, Key("tenant_a"), Key("tenant_b"))
}

func TestRedisLock_UnreachableServerIsInternalError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	l := NewRedisLock(redisclient.NewClientFromRedis(rdb))
	_, err := l.Acquire(context.Background(), Key("tenant_a"), time.Minute)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisLock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, &RedisLock{client: redisclient.NewClientFromRedis(rdb)}
}

func TestRedisLock_AcquireSetsTokenWithTTL(t *testing.T) {
	mr, l := setupMiniRedis(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, Key("tenant_a"), 15*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, release)

	token, err := mr.Get(Key("tenant_a"))
	require.NoError(t, err)
	assert.Len(t, token, 36)
	assert.Equal(t, 15*time.Minute, mr.TTL(Key("tenant_a")))
}

func TestRedisLock_SecondAcquireIsConflict(t *testing.T) {
	_, l := setupMiniRedis(t)
	ctx := context.Background()

	_, err := l.Acquire(ctx, Key("tenant_a"), time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, Key("tenant_a"), time.Minute)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	_, err = l.Acquire(ctx, Key("tenant_b"), time.Minute)
	assert.NoError(t, err, "locks are per schema")
}

func TestRedisLock_ReleaseFreesKey(t *testing.T) {
	mr, l := setupMiniRedis(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, Key("tenant_a"), time.Minute)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists(Key("tenant_a")))

	_, err = l.Acquire(ctx, Key("tenant_a"), time.Minute)
	assert.NoError(t, err)
}

func TestRedisLock_ReleaseKeepsKeyTakenByAnotherRun(t *testing.T) {
	mr, l := setupMiniRedis(t)
	ctx := context.Background()

	release, err := l.Acquire(ctx, Key("tenant_a"), time.Minute)
	require.NoError(t, err)

	// Our lock expired and another run took the key
	mr.FastForward(2 * time.Minute)
	require.NoError(t, mr.Set(Key("tenant_a"), "other-run-token"))

	require.NoError(t, release(ctx))

	holder, err := mr.Get(Key("tenant_a"))
	require.NoError(t, err)
	assert.Equal(t, "other-run-token", holder)
}
