package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

const (
	defaultOpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1"
	geocodingResultCount         = 10
)

// OpenMeteoGeocoderAdapter implements LocationResolver with the keyless Open-Meteo APIs.
// Open-Meteo has no reverse geocoding, so nearby places are named after their coordinate.
type OpenMeteoGeocoderAdapter struct {
	geocodingURL string
	forecastURL  string
	client       HTTPClient
	logger       ports.Logger
}

// OpenMeteoGeocoderParams holds parameters for creating the Open-Meteo geocoder
type OpenMeteoGeocoderParams struct {
	GeocodingURL string
	ForecastURL  string
	Client       HTTPClient
	Logger       ports.Logger
}

type openMeteoPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
}

type openMeteoSearchResponse struct {
	Results []openMeteoPlace `json:"results"`
}

type openMeteoTimezoneResponse struct {
	Timezone string `json:"timezone"`
}

var _ ports.LocationResolver = (*OpenMeteoGeocoderAdapter)(nil)

// NewOpenMeteoGeocoderAdapter creates a new Open-Meteo geocoder
func NewOpenMeteoGeocoderAdapter(params OpenMeteoGeocoderParams) *OpenMeteoGeocoderAdapter {
	geocodingURL := params.GeocodingURL
	if geocodingURL == "" {
		geocodingURL = defaultOpenMeteoGeocodingURL
	}
	forecastURL := params.ForecastURL
	if forecastURL == "" {
		forecastURL = defaultOpenMeteoBaseURL
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(0)
	}

	return &OpenMeteoGeocoderAdapter{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		client:       client,
		logger:       params.Logger,
	}
}

// Search finds places whose name matches query
func (g *OpenMeteoGeocoderAdapter) Search(ctx context.Context, query string) ([]forecast.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(geocodingResultCount))
	params.Set("language", "en")
	params.Set("format", "json")

	var resp openMeteoSearchResponse
	if err := getJSON(ctx, g.client, g.logger, "openmeteo geocoding", fmt.Sprintf("%s/search?%s", g.geocodingURL, params.Encode()), &resp); err != nil {
		return nil, err
	}

	locations := make([]forecast.Location, 0, len(resp.Results))
	for _, place := range resp.Results {
		location := forecast.Location{
			Name:       placeName(place),
			Latitude:   place.Latitude,
			Longitude:  place.Longitude,
			TimezoneID: place.Timezone,
		}
		location.Normalize()
		locations = append(locations, location)
	}
	return locations, nil
}

// ResolveNearby returns a location at the coordinate with its timezone
func (g *OpenMeteoGeocoderAdapter) ResolveNearby(ctx context.Context, coord forecast.Coordinate) (*forecast.Location, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	tz, err := g.TimezoneOf(ctx, coord)
	if err != nil {
		return nil, err
	}

	location := forecast.Location{
		Name:       fmt.Sprintf("%.4f, %.4f", coord.Latitude, coord.Longitude),
		Latitude:   coord.Latitude,
		Longitude:  coord.Longitude,
		TimezoneID: tz,
	}
	location.Normalize()
	return &location, nil
}

// TimezoneOf asks the forecast endpoint to auto-detect the coordinate's timezone
func (g *OpenMeteoGeocoderAdapter) TimezoneOf(ctx context.Context, coord forecast.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', 4, 64))
	params.Set("timezone", "auto")
	params.Set("forecast_days", "1")

	var resp openMeteoTimezoneResponse
	if err := getJSON(ctx, g.client, g.logger, "openmeteo timezone", fmt.Sprintf("%s/forecast?%s", g.forecastURL, params.Encode()), &resp); err != nil {
		return "", err
	}
	if resp.Timezone == "" {
		return "", errors.NewUpstreamMalformedError("openmeteo returned no timezone", nil)
	}
	return resp.Timezone, nil
}

func placeName(p openMeteoPlace) string {
	parts := []string{p.Name}
	if p.Admin1 != "" && p.Admin1 != p.Name {
		parts = append(parts, p.Admin1)
	}
	if p.Country != "" {
		parts = append(parts, p.Country)
	}
	return strings.Join(parts, ", ")
}
