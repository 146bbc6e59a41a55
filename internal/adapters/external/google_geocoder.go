package external

import (
	"context"
	"fmt"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"googlemaps.github.io/maps"
)

// GoogleGeocoderAdapter implements LocationResolver using the Google Maps geocoding and time zone APIs
type GoogleGeocoderAdapter struct {
	client *maps.Client
	logger ports.Logger
	now    func() time.Time
}

// GoogleGeocoderParams holds parameters for creating the Google geocoder
type GoogleGeocoderParams struct {
	APIKey string
	// BaseURL overrides the Maps API host, used by tests
	BaseURL string
	Logger  ports.Logger
}

var _ ports.LocationResolver = (*GoogleGeocoderAdapter)(nil)

// NewGoogleGeocoderAdapter creates a new Google Maps geocoder
func NewGoogleGeocoderAdapter(params GoogleGeocoderParams) (*GoogleGeocoderAdapter, error) {
	options := []maps.ClientOption{maps.WithAPIKey(params.APIKey)}
	if params.BaseURL != "" {
		options = append(options, maps.WithBaseURL(params.BaseURL))
	}

	c, err := maps.NewClient(options...)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create google maps client", err)
	}

	return &GoogleGeocoderAdapter{
		client: c,
		logger: params.Logger,
		now:    time.Now,
	}, nil
}

// Search geocodes a free-text query into candidate locations
func (g *GoogleGeocoderAdapter) Search(ctx context.Context, query string) ([]forecast.Location, error) {
	if query == "" {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, errors.NewUpstreamUnavailableError("google geocoding failed", err)
	}

	locations := make([]forecast.Location, 0, len(results))
	for _, r := range results {
		locations = append(locations, googleResultToLocation(r))
	}
	return locations, nil
}

// ResolveNearby reverse geocodes the coordinate to the closest named place
func (g *GoogleGeocoderAdapter) ResolveNearby(ctx context.Context, coord forecast.Coordinate) (*forecast.Location, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coord.Latitude, Lng: coord.Longitude},
	})
	if err != nil {
		return nil, errors.NewUpstreamUnavailableError("google reverse geocoding failed", err)
	}
	if len(results) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no place found near %s", coord.Key()))
	}

	location := googleResultToLocation(results[0])
	location.Latitude = coord.Latitude
	location.Longitude = coord.Longitude
	location.Normalize()

	if tz, err := g.TimezoneOf(ctx, coord); err == nil {
		location.TimezoneID = tz
	} else if g.logger != nil {
		g.logger.Warn("Failed to resolve timezone", ports.F("location", coord.Key()), ports.F("error", err))
	}
	return &location, nil
}

// TimezoneOf returns the IANA timezone id at the coordinate
func (g *GoogleGeocoderAdapter) TimezoneOf(ctx context.Context, coord forecast.Coordinate) (string, error) {
	result, err := g.client.Timezone(ctx, &maps.TimezoneRequest{
		Location:  &maps.LatLng{Lat: coord.Latitude, Lng: coord.Longitude},
		Timestamp: g.now(),
	})
	if err != nil {
		return "", errors.NewUpstreamUnavailableError("google time zone lookup failed", err)
	}
	if result == nil || result.TimeZoneID == "" {
		return "", errors.NewUpstreamMalformedError("google time zone lookup returned no zone", nil)
	}
	return result.TimeZoneID, nil
}

func googleResultToLocation(r maps.GeocodingResult) forecast.Location {
	name := r.FormattedAddress
	for _, component := range r.AddressComponents {
		if hasType(component.Types, "locality") {
			name = component.LongName
			break
		}
	}

	location := forecast.Location{
		Name:      name,
		Latitude:  r.Geometry.Location.Lat,
		Longitude: r.Geometry.Location.Lng,
	}
	location.Normalize()
	return location
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
