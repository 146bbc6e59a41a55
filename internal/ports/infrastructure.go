package ports

import (
	"time"
)

// WeatherConfig represents provider selection and fetch configuration
type WeatherConfig struct {
	Source       string
	Order        []string
	FetchTimeout time.Duration
	ForecastDays int
}

// SyncConfig represents sync orchestration configuration
type SyncConfig struct {
	Interval        time.Duration
	RetentionWindow time.Duration
	OnStart         bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// CacheConfig represents projection cache configuration
type CacheConfig struct {
	Type  string
	TTL   time.Duration
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetSyncConfig() SyncConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordSyncRun(source string, outcome string, duration time.Duration)
	RecordProviderFetch(provider string, success bool, duration time.Duration)
	RecordEviction(result EvictionResult)
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}
