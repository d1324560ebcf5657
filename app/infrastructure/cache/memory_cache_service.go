package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryItem struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryCacheService is a process-local cache backend. It is the default
// for deployments without a Redis endpoint and the backend tests run on.
type MemoryCacheService struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func NewMemoryCacheService() CacheService {
	return &MemoryCacheService{
		items: make(map[string]memoryItem),
	}
}

func (m *MemoryCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	item := memoryItem{value: value}
	if expiration > 0 {
		item.expiresAt = time.Now().Add(expiration)
	}
	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

func (m *MemoryCacheService) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (m *MemoryCacheService) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// DeletePattern supports the single trailing-asterisk form used by the
// namespace constants.
func (m *MemoryCacheService) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	return nil
}

func (m *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MemoryCacheService) Close() error {
	return nil
}

func (m *MemoryCacheService) HealthCheck(ctx context.Context) error {
	return nil
}
