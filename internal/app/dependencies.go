package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"forecastsync.app/internal/adapters/database"
	"forecastsync.app/internal/adapters/external"
	"forecastsync.app/internal/adapters/infrastructure"
	"forecastsync.app/internal/config"
	"forecastsync.app/internal/ports"
	"gorm.io/gorm"
)

// DependencyContainer builds and owns every adapter behind the application ports
type DependencyContainer struct {
	config  *config.Config
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	health  *infrastructure.SystemHealthChecker
	closers []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}
	configProvider := infrastructure.NewConfigProviderAdapter(cfg)

	if err := container.initializeDatabase(configProvider.GetDatabaseConfig()); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(configProvider); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase(dbConfig ports.DatabaseConfig) error {
	slog.Info("Initializing database connection...", "driver", dbConfig.Driver)

	db, err := database.Open(dbConfig)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(configProvider *infrastructure.ConfigProviderAdapter) error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(c.config.LogLevel)
	slog.SetDefault(logger.Slog())

	// Provider requests go to a dedicated file when enabled
	var requestLogger ports.Logger
	weatherCfg := c.config.Weather
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewZerologFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create provider request log, continuing without it", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			requestLogger = fileLogger
			slog.Info("Provider request logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	metrics := infrastructure.NewPrometheusMetricsCollector()
	c.metrics = metrics

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	forecastCache := external.NewForecastCacheAdapter(cacheProvider, c.config.Cache.Type.String(), metrics)
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"ttl_minutes", c.config.Cache.TTLMinutes)

	var selector ports.SourceSelector = external.NewProviderRegistry(external.ProviderRegistryConfig{
		OpenWeatherMapKey: weatherCfg.OpenWeatherMapKey,
		OpenWeatherMapURL: weatherCfg.OpenWeatherMapBaseURL,
		WeatherAPIKey:     weatherCfg.APIKey,
		WeatherAPIBaseURL: weatherCfg.BaseURL,
		OpenMeteoURL:      weatherCfg.OpenMeteoBaseURL,
		OpenMeteoEnabled:  weatherCfg.OpenMeteoEnabled,
		ProviderOrder:     weatherCfg.ProviderOrder,
		ForecastDays:      weatherCfg.ForecastDays,
		FetchTimeout:      time.Duration(weatherCfg.FetchTimeoutSeconds) * time.Second,
		Resilience: external.ResilienceConfig{
			RateLimitRPS:       weatherCfg.RateLimitRPS,
			RateLimitBurst:     weatherCfg.RateLimitBurst,
			BreakerMaxFailures: weatherCfg.BreakerMaxFailures,
			BreakerTimeout:     time.Duration(weatherCfg.BreakerTimeoutSeconds) * time.Second,
		},
		RequestLogger: requestLogger,
		Logger:        logger,
	})
	if requestLogger != nil {
		selector = external.NewSourceSelectorLoggingDecorator(selector, requestLogger)
	}
	slog.Info("Weather providers configured", "enabled", weatherCfg.EnabledProviders(), "source", weatherCfg.Source)

	resolver, err := c.createLocationResolver(logger)
	if err != nil {
		return fmt.Errorf("create location resolver: %w", err)
	}

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db),
		CacheChecker:    infrastructure.NewCacheHealthChecker(cacheProvider, c.config.Cache.Type.String()),
		ProviderChecker: infrastructure.NewProviderHealthChecker(selector),
		ConfigProvider:  configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		ProviderSelector: selector,
		Normalizer:       external.NewNormalizer(),
		ForecastStore:    database.NewForecastStoreAdapter(c.db),
		ForecastCache:    forecastCache,
		ChangeNotifier:   infrastructure.NewChangeNotifier(),
		LocationResolver: resolver,
		ConfigProvider:   configProvider,
		Logger:           logger,
		Metrics:          metrics,
		Database:         c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// createLocationResolver prefers Google Maps when a key is configured and falls back to Open-Meteo
func (c *DependencyContainer) createLocationResolver(logger ports.Logger) (ports.LocationResolver, error) {
	if key := c.config.Geocoding.GoogleMapsAPIKey; key != "" {
		slog.Info("Using Google Maps geocoder")
		return external.NewGoogleGeocoderAdapter(external.GoogleGeocoderParams{
			APIKey: key,
			Logger: logger,
		})
	}

	slog.Info("Using Open-Meteo geocoder")
	return external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoGeocoderParams{
		GeocodingURL: c.config.Geocoding.BaseURL,
		ForecastURL:  c.config.Weather.OpenMeteoBaseURL,
		Logger:       logger,
	}), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Metrics returns the Prometheus collector backing the /metrics endpoint
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// HealthChecker returns the aggregated component health checker
func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.health
}

// Cleanup closes the database and every other owned resource
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			slog.Warn("Error closing resource", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		c.db = nil
	}
	return firstErr
}
