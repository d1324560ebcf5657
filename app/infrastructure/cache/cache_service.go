package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// ErrCacheMiss reports that a key is absent. Callers treat it as a miss,
// never as a failure.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheService defines the interface for cache operations
type CacheService interface {
	// Set stores a string value in cache with an expiration time.
	// A zero expiration stores the value without a TTL.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a string value from cache; ErrCacheMiss when absent
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a pattern (namespace eviction)
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection
	Close() error

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error
}

// MutexProvider is implemented by backends that can serialize work across
// instances. Callers type-assert; locking stays best-effort.
type MutexProvider interface {
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}
