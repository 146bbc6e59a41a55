package external

import (
	"context"
	"encoding/json"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// ForecastCacheAdapter bridges a byte-level CacheProvider to the ForecastCache port
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
	cacheType     string
	metrics       ports.MetricsCollector
}

var _ ports.ForecastCache = (*ForecastCacheAdapter)(nil)

// NewForecastCacheAdapter creates a forecast cache over cacheProvider; metrics may be nil
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider, cacheType string, metrics ports.MetricsCollector) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
		cacheType:     cacheType,
		metrics:       metrics,
	}
}

// Get returns the cached projection, or a NotFound error on a miss
func (c *ForecastCacheAdapter) Get(ctx context.Context, key string) (*forecast.Forecast, error) {
	data, err := c.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) && c.metrics != nil {
			c.metrics.RecordCacheMiss(c.cacheType)
		}
		return nil, err
	}

	var f forecast.Forecast
	if err := json.Unmarshal(data, &f); err != nil {
		// drop the undecodable entry so the next read rebuilds it
		_ = c.cacheProvider.Delete(ctx, key)
		return nil, errors.NewDatabaseError("failed to deserialize cached forecast", err)
	}

	if c.metrics != nil {
		c.metrics.RecordCacheHit(c.cacheType)
	}
	return &f, nil
}

// Set stores the projection under key for ttl
func (c *ForecastCacheAdapter) Set(ctx context.Context, key string, f *forecast.Forecast, ttl time.Duration) error {
	if f == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	data, err := json.Marshal(f)
	if err != nil {
		return errors.NewDatabaseError("failed to serialize forecast", err)
	}
	return c.cacheProvider.Set(ctx, key, data, ttl)
}

// Invalidate removes the projection stored under key
func (c *ForecastCacheAdapter) Invalidate(ctx context.Context, key string) error {
	return c.cacheProvider.Delete(ctx, key)
}
