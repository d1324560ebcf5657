package cache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"
	"shopstack.io/product-catalog/app/utils/logger"
)

// Aside is the cache-aside read path: check the cache, on a miss compute
// the value once for all concurrent callers of the same key and populate
// the cache best-effort. A failed population never fails the read.
func Aside[T any](ctx context.Context, svc CacheService, group *singleflight.Group, key string, expiration time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if out, ok := lookup[T](ctx, svc, key); ok {
		return out, nil
	}

	// singleflight collapses concurrent cache misses into one computation.
	value, err, _ := group.Do(key, func() (interface{}, error) {
		if out, ok := lookup[T](ctx, svc, key); ok {
			return out, nil
		}
		fresh, err := compute(ctx)
		if err != nil {
			return zero, err
		}
		if payload, err := json.Marshal(fresh); err == nil {
			if err := svc.Set(ctx, key, string(payload), expiration); err != nil {
				logger.GetLogger().WithField("cache_key", key).Warnf("failed to cache value: %v", err)
			}
		}
		return fresh, nil
	})
	if err != nil {
		return zero, err
	}
	return value.(T), nil
}

func lookup[T any](ctx context.Context, svc CacheService, key string) (T, bool) {
	var out T
	cached, err := svc.Get(ctx, key)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal([]byte(cached), &out); err != nil {
		// Stale or corrupted payload; recompute.
		return out, false
	}
	return out, true
}
