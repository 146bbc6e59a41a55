package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"forecastsync.app/internal/adapters/api"
	"forecastsync.app/internal/config"
	"forecastsync.app/internal/core/location"
	"forecastsync.app/internal/core/synchronization"
	"forecastsync.app/internal/core/weather"
	"forecastsync.app/internal/ports"
	"github.com/gin-gonic/gin"
)

const scheduledSyncTimeout = 2 * time.Minute

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase  *weather.UseCase
	locationUseCase *location.UseCase
	syncUseCase     *synchronization.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine
	trigger    *RefreshTrigger

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Store:    a.ports.ForecastStore,
		Cache:    a.ports.ForecastCache,
		Notifier: a.ports.ChangeNotifier,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Resolver: a.ports.LocationResolver,
		Store:    a.ports.ForecastStore,
		Notifier: a.ports.ChangeNotifier,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	syncUseCase, err := synchronization.NewUseCase(synchronization.UseCaseDependencies{
		Store:      a.ports.ForecastStore,
		Selector:   a.ports.ProviderSelector,
		Normalizer: a.ports.Normalizer,
		Cache:      a.ports.ForecastCache,
		Notifier:   a.ports.ChangeNotifier,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create sync use case: %w", err)
	}
	a.syncUseCase = syncUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register request validators", "error", err)
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase:  a.weatherUseCase,
		LocationUseCase: a.locationUseCase,
		SyncUseCase:     a.syncUseCase,
		HealthChecker:   a.deps.HealthChecker(),
		MetricsHandler:  a.deps.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	syncCfg := a.ports.ConfigProvider.GetSyncConfig()
	a.trigger = NewRefreshTrigger(a.syncUseCase, syncCfg.Interval, syncCfg.OnStart, scheduledSyncTimeout)

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.trigger.Start(ctx); err != nil {
		return fmt.Errorf("start refresh trigger: %w", err)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.trigger.Stop()

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetSyncUseCase returns the sync orchestrator
func (a *Application) GetSyncUseCase() *synchronization.UseCase {
	return a.syncUseCase
}

// GetLocationUseCase returns the location use case
func (a *Application) GetLocationUseCase() *location.UseCase {
	return a.locationUseCase
}

// GetWeatherUseCase returns the read side use case
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
