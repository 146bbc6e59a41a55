package config

import (
	"fmt"
	"strings"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB              = 15
	maxCacheTTLMinutes      = 1440
	maxSyncIntervalMinutes  = 10080
	maxRetentionWindowHours = 24 * 30
	maxForecastDays         = 16
	maxPortNumber           = 65535

	// SourceComposite selects every configured provider in precedence order
	SourceComposite = "composite"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Sync      SyncConfig      `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver represents the SQL backend of the forecast store
type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
	DatabaseDriverPostgres DatabaseDriver = "postgres"
)

type DatabaseConfig struct {
	Driver   DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	Path     string         `envconfig:"DB_PATH" default:"data/forecast.db"`
	Host     string         `envconfig:"DB_HOST" default:"localhost"`
	Port     int            `envconfig:"DB_PORT" default:"5432"`
	User     string         `envconfig:"DB_USER" default:"postgres"`
	Password string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string         `envconfig:"DB_NAME" default:"forecastsync"`
	SSLMode  string         `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	APIKey                string   `envconfig:"WEATHER_API_KEY"`
	BaseURL               string   `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	OpenWeatherMapKey     string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/3.0"`
	OpenMeteoBaseURL      string   `envconfig:"OPENMETEO_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	OpenMeteoEnabled      bool     `envconfig:"OPENMETEO_ENABLED" default:"true"`
	Source                string   `envconfig:"WEATHER_SOURCE" default:"openmeteo"`
	ProviderOrder         []string `envconfig:"WEATHER_PROVIDER_ORDER" default:"openweathermap,weatherapi,openmeteo"`
	FetchTimeoutSeconds   int      `envconfig:"WEATHER_FETCH_TIMEOUT_SECONDS" default:"10"`
	ForecastDays          int      `envconfig:"WEATHER_FORECAST_DAYS" default:"7"`
	EnableLogging         bool     `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string   `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
	RateLimitRPS          float64  `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst        int      `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	BreakerMaxFailures    uint32   `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerTimeoutSeconds int      `envconfig:"WEATHER_BREAKER_TIMEOUT_SECONDS" default:"30"`
}

// EnabledProviders returns the provider names that have what they need to run
func (w WeatherConfig) EnabledProviders() []string {
	var enabled []string
	if w.OpenWeatherMapKey != "" {
		enabled = append(enabled, forecast.DataSourceOpenWeatherMap.String())
	}
	if w.APIKey != "" {
		enabled = append(enabled, forecast.DataSourceWeatherAPI.String())
	}
	if w.OpenMeteoEnabled {
		enabled = append(enabled, forecast.DataSourceOpenMeteo.String())
	}
	return enabled
}

type SyncConfig struct {
	IntervalMinutes      int  `envconfig:"SYNC_INTERVAL_MINUTES" default:"60"`
	RetentionWindowHours int  `envconfig:"RETENTION_WINDOW_HOURS" default:"24"`
	OnStart              bool `envconfig:"SYNC_ON_START" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes int         `envconfig:"CACHE_TTL_MINUTES" default:"10"`
	Redis      RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type GeocodingConfig struct {
	GoogleMapsAPIKey string `envconfig:"GOOGLE_MAPS_API_KEY"`
	BaseURL          string `envconfig:"GEOCODING_API_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Sync.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	return c.validateLogLevel()
}

func (c *Config) validateLogLevel() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	enabled := w.EnabledProviders()
	if len(enabled) == 0 {
		return errors.NewConfigurationError("at least one weather provider must be configured", nil)
	}

	for name, url := range map[string]string{
		"WEATHER_API_BASE_URL":        w.BaseURL,
		"OPENWEATHERMAP_API_BASE_URL": w.OpenWeatherMapBaseURL,
		"OPENMETEO_API_BASE_URL":      w.OpenMeteoBaseURL,
	} {
		if !isHTTPURL(url) {
			return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
		}
	}

	for _, provider := range w.ProviderOrder {
		ds, ok := forecast.DataSourceFromString(provider)
		if !ok || ds == forecast.DataSourceComposite {
			return errors.NewConfigurationError(fmt.Sprintf("invalid weather provider in order: %s", provider), nil)
		}
	}

	if err := w.validateSource(enabled); err != nil {
		return err
	}

	if w.FetchTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_FETCH_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.ForecastDays < 1 || w.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("WEATHER_FORECAST_DAYS must be between 1 and 16", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (w *WeatherConfig) validateSource(enabled []string) error {
	if w.Source == SourceComposite {
		return nil
	}
	ds, ok := forecast.DataSourceFromString(w.Source)
	if !ok || ds == forecast.DataSourceComposite {
		return errors.NewConfigurationError(
			"WEATHER_SOURCE must be one of: openweathermap, weatherapi, openmeteo, composite", nil)
	}
	for _, name := range enabled {
		if name == ds.String() {
			return nil
		}
	}
	return errors.NewConfigurationError(fmt.Sprintf("WEATHER_SOURCE %s is not configured", w.Source), nil)
}

func (s *SyncConfig) Validate() error {
	if s.IntervalMinutes < 1 {
		return errors.NewConfigurationError("SYNC_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	if s.IntervalMinutes > maxSyncIntervalMinutes {
		return errors.NewConfigurationError("SYNC_INTERVAL_MINUTES cannot exceed 10080 minutes (7 days)", nil)
	}
	if s.RetentionWindowHours < 1 || s.RetentionWindowHours > maxRetentionWindowHours {
		return errors.NewConfigurationError("RETENTION_WINDOW_HOURS must be between 1 and 720 hours", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.TTLMinutes < 1 || c.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	if g.GoogleMapsAPIKey == "" && !isHTTPURL(g.BaseURL) {
		return errors.NewConfigurationError("GEOCODING_API_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
