package ports

import (
	"context"

	"forecastsync.app/internal/core/forecast"
)

// LocationResolver defines the contract for geocoding collaborators
type LocationResolver interface {
	Search(ctx context.Context, query string) ([]forecast.Location, error)
	ResolveNearby(ctx context.Context, coord forecast.Coordinate) (*forecast.Location, error)
	TimezoneOf(ctx context.Context, coord forecast.Coordinate) (string, error)
}
