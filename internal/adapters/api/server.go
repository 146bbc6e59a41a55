// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/location"
	"forecastsync.app/internal/core/synchronization"
	"forecastsync.app/internal/core/weather"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	weatherUseCase  WeatherUseCase
	locationUseCase LocationUseCase
	syncUseCase     SyncUseCase
	healthChecker   ports.SystemHealthChecker
	metricsHandler  http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	GetForecast(ctx context.Context, request weather.ForecastRequest) (*forecast.Forecast, error)
	GetActiveForecast(ctx context.Context, source string) (*forecast.Forecast, error)
	WatchForecast(ctx context.Context, request weather.ForecastRequest) (*forecast.Forecast, error)
	GetRecentLocations(ctx context.Context) ([]forecast.Location, error)
}

type LocationUseCase interface {
	Search(ctx context.Context, query string) ([]forecast.Location, error)
	Select(ctx context.Context, params location.SelectParams) (*forecast.Location, error)
	ResolveNearby(ctx context.Context, lat, lon float64) (*forecast.Location, error)
}

type SyncUseCase interface {
	RequestSync(ctx context.Context) (*synchronization.Result, error)
	Status() synchronization.StatusReport
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	WeatherUseCase  WeatherUseCase
	LocationUseCase LocationUseCase
	SyncUseCase     SyncUseCase
	HealthChecker   ports.SystemHealthChecker
	MetricsHandler  http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		weatherUseCase:  opts.WeatherUseCase,
		locationUseCase: opts.LocationUseCase,
		syncUseCase:     opts.SyncUseCase,
		healthChecker:   opts.HealthChecker,
		metricsHandler:  opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.LocationUseCase == nil {
		return errors.NewValidationError("location use case is required")
	}
	if opts.SyncUseCase == nil {
		return errors.NewValidationError("sync use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/forecast", s.getForecast)
		api.GET("/forecast/watch", s.watchForecast)

		api.GET("/locations/recent", s.getRecentLocations)
		api.GET("/locations/search", s.searchLocations)
		api.POST("/locations/select", s.selectLocation)
		api.POST("/locations/nearby", s.resolveNearby)

		api.POST("/sync", s.requestSync)
		api.GET("/sync/status", s.getSyncStatus)

		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// requestLogger logs each request through slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status())
	}
}
