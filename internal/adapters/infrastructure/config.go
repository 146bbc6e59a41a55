package infrastructure

import (
	"time"

	"forecastsync.app/internal/config"
	"forecastsync.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)

// GetWeatherConfig returns provider selection configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	order := make([]string, len(c.config.Weather.ProviderOrder))
	copy(order, c.config.Weather.ProviderOrder)

	return ports.WeatherConfig{
		Source:       c.config.Weather.Source,
		Order:        order,
		FetchTimeout: time.Duration(c.config.Weather.FetchTimeoutSeconds) * time.Second,
		ForecastDays: c.config.Weather.ForecastDays,
	}
}

// GetSyncConfig returns sync orchestration configuration
func (c *ConfigProviderAdapter) GetSyncConfig() ports.SyncConfig {
	return ports.SyncConfig{
		Interval:        time.Duration(c.config.Sync.IntervalMinutes) * time.Minute,
		RetentionWindow: time.Duration(c.config.Sync.RetentionWindowHours) * time.Hour,
		OnStart:         c.config.Sync.OnStart,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver: string(c.config.Database.Driver),
		DSN:    c.config.Database.GetDSN(),
	}
}

// GetCacheConfig returns projection cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		TTL:  time.Duration(c.config.Cache.TTLMinutes) * time.Minute,
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}
