package infrastructure

import (
	"context"
	"sync"

	"forecastsync.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.HealthChecker
	cacheChecker    ports.HealthChecker
	providerChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		cacheChecker:    config.CacheChecker,
		providerChecker: config.ProviderChecker,
		configProvider:  config.ConfigProvider,
	}
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)

// CheckAll runs every configured check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	checkers := map[string]ports.HealthChecker{}
	if s.databaseChecker != nil {
		checkers["database"] = s.databaseChecker
	}
	if s.cacheChecker != nil {
		checkers["cache"] = s.cacheChecker
	}
	if s.providerChecker != nil {
		checkers["providers"] = s.providerChecker
	}

	results := make(map[string]ports.HealthStatus, len(checkers)+1)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		weather := s.configProvider.GetWeatherConfig()
		syncCfg := s.configProvider.GetSyncConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.HealthStatusHealthy,
			Details: map[string]interface{}{
				"source":           weather.Source,
				"provider_order":   weather.Order,
				"sync_interval":    syncCfg.Interval.String(),
				"retention_window": syncCfg.RetentionWindow.String(),
			},
		}
	}

	return results
}

// OverallStatus reduces component results to one status; any unhealthy component wins over degraded
func OverallStatus(results map[string]ports.HealthStatus) string {
	overall := ports.HealthStatusHealthy
	for _, r := range results {
		switch r.Status {
		case ports.HealthStatusUnhealthy:
			return ports.HealthStatusUnhealthy
		case ports.HealthStatusDegraded:
			overall = ports.HealthStatusDegraded
		}
	}
	return overall
}
