package infrastructure

import (
	"context"
	"time"

	"forecastsync.app/internal/ports"
)

const cacheProbeKey = "health:probe"

// CacheHealthChecker verifies the projection cache with a write/read round trip
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check writes, reads back and deletes a probe key
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "cache provider is not available"
		return status
	}

	probe := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	if err := c.cache.Set(ctx, cacheProbeKey, probe, time.Minute); err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}

	value, err := c.cache.Get(ctx, cacheProbeKey)
	if err != nil || string(value) != string(probe) {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "cache probe round trip failed"
		return status
	}
	_ = c.cache.Delete(ctx, cacheProbeKey)

	if stats, ok := c.cache.(ports.CacheMetrics); ok {
		s := stats.GetStats()
		status.Details["hits"] = s.Hits
		status.Details["misses"] = s.Misses
		status.Details["hit_ratio"] = s.HitRatio
	}

	status.Status = ports.HealthStatusHealthy
	return status
}

// ProviderHealthChecker reports weather provider availability from the source selector.
// A provider whose circuit breaker is open counts as unavailable.
type ProviderHealthChecker struct {
	selector ports.SourceSelector
}

// NewProviderHealthChecker creates a new provider health checker
func NewProviderHealthChecker(selector ports.SourceSelector) *ProviderHealthChecker {
	return &ProviderHealthChecker{selector: selector}
}

// Check inspects the breaker states of every registered provider
func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "providers",
		Details:   make(map[string]interface{}),
	}

	if p.selector == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "source selector is not available"
		return status
	}

	info := p.selector.GetProviderInfo()
	for k, v := range info {
		status.Details[k] = v
	}

	states, _ := info["breaker_states"].(map[string]string)
	open := 0
	for _, state := range states {
		if state == "open" {
			open++
		}
	}

	switch {
	case len(states) > 0 && open == len(states):
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "every weather provider circuit breaker is open"
	case open > 0:
		status.Status = ports.HealthStatusDegraded
	default:
		status.Status = ports.HealthStatusHealthy
	}
	return status
}
