package external

import (
	"context"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastProviderLoggingDecorator creates a new logging decorator for forecast providers
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Fetch wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) Fetch(ctx context.Context, coord forecast.Coordinate) (ports.RawForecast, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("location", coord.Key()),
		ports.F("event", "request"))

	startTime := time.Now()
	raw, err := d.provider.Fetch(ctx, coord)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("location", coord.Key()),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("location", coord.Key()),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))

	return raw, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// DataSource returns the wrapped provider's data source
func (d *ForecastProviderLoggingDecorator) DataSource() forecast.DataSource {
	return d.provider.DataSource()
}

// SourceSelectorLoggingDecorator decorates the source selector with logging
type SourceSelectorLoggingDecorator struct {
	selector ports.SourceSelector
	logger   ports.Logger
}

// NewSourceSelectorLoggingDecorator creates a new logging decorator for the source selector
func NewSourceSelectorLoggingDecorator(selector ports.SourceSelector, logger ports.Logger) *SourceSelectorLoggingDecorator {
	return &SourceSelectorLoggingDecorator{
		selector: selector,
		logger:   logger,
	}
}

// Select wraps the selector call with structured logging
func (d *SourceSelectorLoggingDecorator) Select(cfg ports.SelectionConfig) ([]ports.ForecastProvider, error) {
	providers, err := d.selector.Select(cfg)
	if err != nil {
		d.logger.Error("Forecast source selection failed",
			ports.F("source", cfg.Source),
			ports.F("event", "select_error"),
			ports.F("error", err.Error()))
		return nil, err
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.GetProviderName()
	}
	d.logger.Debug("Forecast sources selected",
		ports.F("source", cfg.Source),
		ports.F("event", "select"),
		ports.F("providers", names))

	return providers, nil
}

// GetProviderInfo delegates to the wrapped selector
func (d *SourceSelectorLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.selector.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}
