package location

import (
	"strings"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/pkg/errors"
)

const maxQueryLength = 100

// SelectParams describes the location to make active
type SelectParams struct {
	Name       string
	Latitude   float64
	Longitude  float64
	TimezoneID string
}

// Validate checks the parameters
func (p SelectParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewValidationError("location name is required")
	}
	return forecast.NewCoordinate(p.Latitude, p.Longitude).Validate()
}

func (p SelectParams) toLocation() forecast.Location {
	l := forecast.Location{
		Name:       p.Name,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		TimezoneID: p.TimezoneID,
	}
	l.Normalize()
	return l
}

func normalizeQuery(query string) (string, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return "", errors.NewValidationError("search query is required")
	}
	if len(query) > maxQueryLength {
		return "", errors.NewValidationError("search query is too long")
	}
	return query, nil
}
