package ports

import (
	"context"

	"forecastsync.app/internal/core/forecast"
)

// EvictionResult reports how many rows an eviction removed
type EvictionResult struct {
	Hourly    int64
	Daily     int64
	Locations int64
}

// Total returns the number of removed rows
func (r EvictionResult) Total() int64 {
	return r.Hourly + r.Daily + r.Locations
}

// ForecastStore defines the contract for the local forecast cache.
// Every mutation runs in a single transaction.
type ForecastStore interface {
	SaveHourly(ctx context.Context, records []forecast.HourlyRecord) error
	SaveDaily(ctx context.Context, records []forecast.DailyRecord) error
	SaveForecast(ctx context.Context, hourly []forecast.HourlyRecord, daily []forecast.DailyRecord) error
	QueryHourly(ctx context.Context, lat, lon float64, since int64, source forecast.DataSource) ([]forecast.HourlyRecord, error)
	QueryDaily(ctx context.Context, lat, lon float64, since int64, source forecast.DataSource) ([]forecast.DailyRecord, error)

	SaveLocation(ctx context.Context, location forecast.Location) error
	QueryRecentLocations(ctx context.Context) ([]forecast.Location, error)
	CurrentLocation(ctx context.Context) (*forecast.Location, error)

	ClearOlderThan(ctx context.Context, cutoff int64) (EvictionResult, error)
}
