package config

import (
	"testing"

	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: DatabaseDriverSQLite, Path: "data/forecast.db"},
		Weather: WeatherConfig{
			BaseURL:               "https://api.weatherapi.com/v1",
			OpenWeatherMapBaseURL: "https://api.openweathermap.org/data/3.0",
			OpenMeteoBaseURL:      "https://api.open-meteo.com/v1",
			OpenMeteoEnabled:      true,
			Source:                "openmeteo",
			ProviderOrder:         []string{"openweathermap", "weatherapi", "openmeteo"},
			FetchTimeoutSeconds:   10,
			ForecastDays:          7,
			RateLimitRPS:          5,
			RateLimitBurst:        5,
			BreakerMaxFailures:    5,
			BreakerTimeoutSeconds: 30,
		},
		Sync:      SyncConfig{IntervalMinutes: 60, RetentionWindowHours: 24},
		Cache:     CacheConfig{Type: CacheTypeMemory, TTLMinutes: 10},
		Geocoding: GeocodingConfig{BaseURL: "https://geocoding-api.open-meteo.com/v1"},
		LogLevel:  "info",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/forecast.db", cfg.Database.Path)
	assert.Equal(t, "data/forecast.db", cfg.Database.GetDSN())
	assert.Equal(t, "openmeteo", cfg.Weather.Source)
	assert.True(t, cfg.Weather.OpenMeteoEnabled)
	assert.Equal(t, []string{"openweathermap", "weatherapi", "openmeteo"}, cfg.Weather.ProviderOrder)
	assert.Equal(t, 24, cfg.Sync.RetentionWindowHours)
	assert.Equal(t, 60, cfg.Sync.IntervalMinutes)
	assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_CustomValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "forecasts")
	t.Setenv("OPENWEATHERMAP_API_KEY", "owm-key")
	t.Setenv("WEATHER_API_KEY", "wapi-key")
	t.Setenv("WEATHER_SOURCE", "composite")
	t.Setenv("WEATHER_PROVIDER_ORDER", "weatherapi,openweathermap")
	t.Setenv("RETENTION_WINDOW_HOURS", "48")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DatabaseDriverPostgres, cfg.Database.Driver)
	assert.Contains(t, cfg.Database.GetDSN(), "host=db")
	assert.Contains(t, cfg.Database.GetDSN(), "dbname=forecasts")
	assert.Equal(t, SourceComposite, cfg.Weather.Source)
	assert.Equal(t, []string{"weatherapi", "openweathermap"}, cfg.Weather.ProviderOrder)
	assert.Equal(t, []string{"openweathermap", "weatherapi", "openmeteo"}, cfg.Weather.EnabledProviders())
	assert.Equal(t, 48, cfg.Sync.RetentionWindowHours)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
}

func TestLoadConfig_InvalidSource(t *testing.T) {
	t.Setenv("WEATHER_SOURCE", "accuweather")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"BadPort", func(c *Config) { c.Server.Port = 0 }, "SERVER_PORT"},
		{"UnknownDriver", func(c *Config) { c.Database.Driver = "mysql" }, "DB_DRIVER"},
		{"EmptySQLitePath", func(c *Config) { c.Database.Path = "" }, "DB_PATH"},
		{"PostgresBadSSL", func(c *Config) {
			c.Database = DatabaseConfig{Driver: DatabaseDriverPostgres, Host: "h", Port: 5432, User: "u", Name: "n", SSLMode: "maybe"}
		}, "DB_SSL_MODE"},
		{"NoProviders", func(c *Config) { c.Weather.OpenMeteoEnabled = false }, "at least one weather provider"},
		{"SourceNotConfigured", func(c *Config) { c.Weather.Source = "weatherapi" }, "is not configured"},
		{"CompositeInOrder", func(c *Config) { c.Weather.ProviderOrder = []string{"composite"} }, "invalid weather provider"},
		{"BadBaseURL", func(c *Config) { c.Weather.OpenMeteoBaseURL = "ftp://x" }, "OPENMETEO_API_BASE_URL"},
		{"ZeroTimeout", func(c *Config) { c.Weather.FetchTimeoutSeconds = 0 }, "WEATHER_FETCH_TIMEOUT_SECONDS"},
		{"TooManyDays", func(c *Config) { c.Weather.ForecastDays = 17 }, "WEATHER_FORECAST_DAYS"},
		{"ZeroRate", func(c *Config) { c.Weather.RateLimitRPS = 0 }, "WEATHER_RATE_LIMIT_RPS"},
		{"ZeroRetention", func(c *Config) { c.Sync.RetentionWindowHours = 0 }, "RETENTION_WINDOW_HOURS"},
		{"ZeroInterval", func(c *Config) { c.Sync.IntervalMinutes = 0 }, "SYNC_INTERVAL_MINUTES"},
		{"UnknownCache", func(c *Config) { c.Cache.Type = CacheTypeUnknown }, "CACHE_TYPE"},
		{"RedisWithoutAddr", func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis = RedisConfig{DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
		}, "REDIS_ADDR"},
		{"BadGeocodingURL", func(c *Config) { c.Geocoding.BaseURL = "" }, "GEOCODING_API_BASE_URL"},
		{"GoogleKeyWithoutURL", func(c *Config) {
			c.Geocoding = GeocodingConfig{GoogleMapsAPIKey: "key"}
		}, ""},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "trace" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestCacheType(t *testing.T) {
	var ct CacheType
	require.NoError(t, ct.UnmarshalText([]byte("redis")))
	assert.Equal(t, CacheTypeRedis, ct)

	text, err := ct.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "redis", string(text))

	assert.False(t, CacheTypeFromString("disk").IsValid())
}
