package ports

import (
	"context"
	"time"

	"forecastsync.app/internal/core/forecast"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
}

// ForecastCache caches assembled forecast projections
type ForecastCache interface {
	Get(ctx context.Context, key string) (*forecast.Forecast, error)
	Set(ctx context.Context, key string, f *forecast.Forecast, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
