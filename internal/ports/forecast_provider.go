package ports

import (
	"context"

	"forecastsync.app/internal/core/forecast"
)

// RawForecast is a provider response before normalization. Its concrete type is
// private to the adapter that produced it.
type RawForecast interface {
	Source() forecast.DataSource
}

// ForecastProvider defines the contract for one upstream weather API
type ForecastProvider interface {
	Fetch(ctx context.Context, coord forecast.Coordinate) (RawForecast, error)
	GetProviderName() string
	DataSource() forecast.DataSource
}

// ForecastNormalizer converts raw provider responses to canonical records
type ForecastNormalizer interface {
	Normalize(source forecast.DataSource, raw RawForecast) (*forecast.Batch, error)
}

// SelectionConfig tells the selector which providers to use
type SelectionConfig struct {
	// Source is a single provider name or "composite"
	Source string
	// Order is the precedence used in composite mode
	Order []string
}

// SourceSelector picks the providers for a sync run
type SourceSelector interface {
	Select(cfg SelectionConfig) ([]ForecastProvider, error)
	GetProviderInfo() map[string]interface{}
}
