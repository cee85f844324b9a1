package providers

import (
	"context"
	"time"
)

// ReleaseFunc releases a lock obtained from a LockProvider
type ReleaseFunc func(ctx context.Context) error

// LockProvider serialises seeding runs against the same tenant schema
type LockProvider interface {
	// Acquire takes key for at most ttl. It fails with a CONFLICT error when
	// another run already holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error)
}
