package external

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider with per-entry expiry.
// Expired entries are dropped lazily on access.
type MemoryCacheProvider struct {
	mutex  sync.RWMutex
	data   map[string]memoryCacheItem
	now    func() time.Time
	hits   atomic.Int64
	misses atomic.Int64
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

var (
	_ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	_ ports.CacheMetrics  = (*MemoryCacheProvider)(nil)
)

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if exists && c.now().After(item.expiresAt) {
		c.mutex.Lock()
		if current, ok := c.data[key]; ok && c.now().After(current.expiresAt) {
			delete(c.data, key)
		}
		c.mutex.Unlock()
		exists = false
	}
	if !exists {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	c.data[key] = memoryCacheItem{data: stored, expiresAt: c.now().Add(ttl)}
	c.mutex.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	delete(c.data, key)
	c.mutex.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	return exists && !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	c.data = make(map[string]memoryCacheItem)
	c.mutex.Unlock()
	return nil
}

// Len returns the number of entries, including expired ones not yet dropped
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return buildCacheStats(c.hits.Load(), c.misses.Load())
}

func (c *MemoryCacheProvider) RecordHit() {
	c.hits.Add(1)
}

func (c *MemoryCacheProvider) RecordMiss() {
	c.misses.Add(1)
}

func buildCacheStats(hits, misses int64) ports.CacheStats {
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
