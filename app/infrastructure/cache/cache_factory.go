package cache

import (
	"strings"

	"shopstack.io/product-catalog/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	// Default to Redis when an endpoint is configured, otherwise stay
	// process-local.
	if cacheType == "" {
		if environment_variables.EnvironmentVariables.CACHE_URL != "" {
			cacheType = "redis"
		} else {
			cacheType = "memory"
		}
	}

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	case "memory":
		return NewMemoryCacheService()
	case "noop":
		return NewNoOpCacheService()
	default:
		return NewMemoryCacheService()
	}
}
