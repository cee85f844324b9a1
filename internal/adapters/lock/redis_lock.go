package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/medora/tenant-seeder/internal/domain/providers"
	redisclient "github.com/medora/tenant-seeder/internal/infrastructure/clients/redis"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another run is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock implements LockProvider with SET NX PX
type RedisLock struct {
	client *redisclient.Client
}

// NewRedisLock creates a new Redis-backed run lock
func NewRedisLock(client *redisclient.Client) providers.LockProvider {
	return &RedisLock{client: client}
}

// Acquire takes key for at most ttl
func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (providers.ReleaseFunc, error) {
	token := uuid.NewString()

	ok, err := l.client.Client().SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to acquire lock %s", key), err)
	}
	if !ok {
		holder, err := l.client.Client().Get(ctx, key).Result()
		if err != nil {
			// The holder may have released between SETNX and GET
			log.Debug().Err(err).Str("key", key).Msg("could not read lock holder")
			return nil, apperrors.NewConflictError(fmt.Sprintf("another seeding run holds %s", key))
		}
		return nil, apperrors.NewConflictError(fmt.Sprintf("another seeding run holds %s (token %s)", key, holder))
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client.Client(), []string{key}, token).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// NoopLock is used when SEED_LOCK_ENABLED is false
type NoopLock struct{}

// Acquire always succeeds
func (NoopLock) Acquire(ctx context.Context, key string, ttl time.Duration) (providers.ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}

// Key returns the lock key for a tenant schema and seeding command
func Key(schema string) string {
	return "tenant-seeder:lock:" + schema
}
