package weather

import (
	"strings"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/pkg/errors"
)

// ForecastRequest identifies the forecast projection to read
type ForecastRequest struct {
	Latitude  float64
	Longitude float64
	// Source is a provider name or "composite"; empty means the configured source
	Source string
}

// Coordinate returns the rounded coordinate of the request
func (r ForecastRequest) Coordinate() forecast.Coordinate {
	return forecast.NewCoordinate(r.Latitude, r.Longitude)
}

// Validate checks the coordinate and, when set, the source name
func (r ForecastRequest) Validate() error {
	if err := r.Coordinate().Validate(); err != nil {
		return err
	}
	if r.Source != "" {
		if _, ok := forecast.DataSourceFromString(r.Source); !ok {
			return errors.NewValidationError("unknown data source: " + r.Source)
		}
	}
	return nil
}

// resolveSource picks the request source or falls back to the configured one
func (r ForecastRequest) resolveSource(configured string) (forecast.DataSource, error) {
	name := strings.ToLower(strings.TrimSpace(r.Source))
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(configured))
	}
	source, ok := forecast.DataSourceFromString(name)
	if !ok {
		return 0, errors.NewValidationError("unknown data source: " + name)
	}
	return source, nil
}
