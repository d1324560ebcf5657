package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopstack.io/product-catalog/app/infrastructure/cache"
)

func TestMemoryCacheSetGetDelete(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemoryCacheService()

	assert.NoError(t, svc.Set(ctx, "k", "v", 0))

	value, err := svc.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", value)

	exists, err := svc.Exists(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, svc.Delete(ctx, "k"))
	_, err = svc.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemoryCacheService()

	assert.NoError(t, svc.Set(ctx, "short", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := svc.Get(ctx, "short")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemoryCacheService()

	keys := []string{
		cache.ProductAllKey,
		fmt.Sprintf(cache.ProductByIDKeyPattern, "prod_a"),
		fmt.Sprintf(cache.ProductByCategoryKeyPattern, "MODE"),
	}
	for _, key := range keys {
		assert.NoError(t, svc.Set(ctx, key, "v", 0))
	}
	assert.NoError(t, svc.Set(ctx, "v1:orders:1", "v", 0))

	assert.NoError(t, svc.DeletePattern(ctx, cache.ProductNamespacePattern))

	for _, key := range keys {
		_, err := svc.Get(ctx, key)
		assert.ErrorIs(t, err, cache.ErrCacheMiss, key)
	}

	// Other namespaces are untouched.
	value, err := svc.Get(ctx, "v1:orders:1")
	assert.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestDeletePatternLeavesLockKeysIntact(t *testing.T) {
	ctx := context.Background()
	svc := cache.NewMemoryCacheService()

	lockKey := fmt.Sprintf(cache.ProductUpdateLockKeyPattern, "prod_a")
	assert.NoError(t, svc.Set(ctx, lockKey, "holder", 0))
	assert.NoError(t, svc.Set(ctx, cache.ProductAllKey, "v", 0))

	assert.NoError(t, svc.DeletePattern(ctx, cache.ProductNamespacePattern))

	// A held update lock must survive the eviction its critical section
	// triggers.
	value, err := svc.Get(ctx, lockKey)
	assert.NoError(t, err)
	assert.Equal(t, "holder", value)

	_, err = svc.Get(ctx, cache.ProductAllKey)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
