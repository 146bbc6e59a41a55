// Package forecast holds the canonical forecast shapes shared by every provider,
// the store and the read side.
package forecast

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"forecastsync.app/pkg/errors"
)

// MaxRecentLocations is the number of locations kept in the history.
const MaxRecentLocations = 5

// coordinateScale rounds coordinates to 4 decimal places, the precision the geocoders return.
const coordinateScale = 1e4

// DataSource tags every stored record with the provider it came from
type DataSource int

const (
	DataSourceOpenWeatherMap DataSource = 0
	DataSourceWeatherAPI     DataSource = 1
	DataSourceOpenMeteo      DataSource = 2
	DataSourceComposite      DataSource = 9
)

// String returns the configuration name of the data source
func (d DataSource) String() string {
	switch d {
	case DataSourceOpenWeatherMap:
		return "openweathermap"
	case DataSourceWeatherAPI:
		return "weatherapi"
	case DataSourceOpenMeteo:
		return "openmeteo"
	case DataSourceComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// IsValid checks if the data source is one of the known values
func (d DataSource) IsValid() bool {
	switch d {
	case DataSourceOpenWeatherMap, DataSourceWeatherAPI, DataSourceOpenMeteo, DataSourceComposite:
		return true
	}
	return false
}

// DataSourceFromString converts a configuration name to a DataSource
func DataSourceFromString(s string) (DataSource, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openweathermap":
		return DataSourceOpenWeatherMap, true
	case "weatherapi":
		return DataSourceWeatherAPI, true
	case "openmeteo":
		return DataSourceOpenMeteo, true
	case "composite":
		return DataSourceComposite, true
	default:
		return -1, false
	}
}

// RoundCoordinate rounds a latitude or longitude to the stored precision
func RoundCoordinate(v float64) float64 {
	return math.Round(v*coordinateScale) / coordinateScale
}

// Coordinate is a rounded latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate returns the coordinate rounded to the stored precision
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Latitude: RoundCoordinate(lat), Longitude: RoundCoordinate(lon)}
}

// Validate checks the coordinate ranges
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return errors.NewValidationError("latitude must be between -90 and 90")
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return errors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

// Key identifies the coordinate in caches, watchers and in-flight sync runs
func (c Coordinate) Key() string {
	return fmt.Sprintf("%.4f,%.4f", RoundCoordinate(c.Latitude), RoundCoordinate(c.Longitude))
}

// Location is a place the user has searched for or been resolved to
type Location struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TimezoneID  string  `json:"timezone_id"`
	LastUpdated int64   `json:"last_updated"`
}

// Coordinate returns the rounded identity of the location
func (l Location) Coordinate() Coordinate {
	return NewCoordinate(l.Latitude, l.Longitude)
}

// Normalize rounds the coordinates and trims the text fields
func (l *Location) Normalize() {
	l.Latitude = RoundCoordinate(l.Latitude)
	l.Longitude = RoundCoordinate(l.Longitude)
	l.Name = strings.TrimSpace(l.Name)
	l.TimezoneID = strings.TrimSpace(l.TimezoneID)
}

// Validate validates location data
func (l Location) Validate() error {
	if err := l.Coordinate().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.NewValidationError("location name cannot be empty")
	}
	if l.LastUpdated < 0 {
		return errors.NewValidationError("last updated cannot be negative")
	}
	return nil
}

// HourlyRecord is one hour of canonical forecast data
type HourlyRecord struct {
	Datetime                 int64       `json:"datetime"`
	Temperature              float64     `json:"temperature"`
	FeelsLike                float64     `json:"feels_like"`
	Pressure                 float64     `json:"pressure"`
	Humidity                 int         `json:"humidity"`
	UVI                      float64     `json:"uvi"`
	Clouds                   int         `json:"clouds"`
	Visibility               int         `json:"visibility"`
	WindSpeed                float64     `json:"wind_speed"`
	WindDegrees              int         `json:"wind_degrees"`
	WeatherCode              WeatherCode `json:"weather_code"`
	PrecipitationProbability int         `json:"precipitation_probability"`
	PrecipitationAmount      float64     `json:"precipitation_amount"`
	Latitude                 float64     `json:"latitude"`
	Longitude                float64     `json:"longitude"`
	DataSource               DataSource  `json:"data_source"`
}

// DailyRecord is one day of canonical forecast data
type DailyRecord struct {
	Datetime            int64       `json:"datetime"`
	MinTemperature      float64     `json:"min_temperature"`
	MaxTemperature      float64     `json:"max_temperature"`
	Pressure            float64     `json:"pressure"`
	Humidity            int         `json:"humidity"`
	UVI                 float64     `json:"uvi"`
	Clouds              int         `json:"clouds"`
	WindSpeed           float64     `json:"wind_speed"`
	WindDegrees         int         `json:"wind_degrees"`
	WeatherCode         WeatherCode `json:"weather_code"`
	PrecipitationAmount float64     `json:"precipitation_amount"`
	MoonPhaseID         MoonPhase   `json:"moon_phase_id"`
	Sunrise             int64       `json:"sunrise"`
	Sunset              int64       `json:"sunset"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	DataSource          DataSource  `json:"data_source"`
}

// Batch is the normalized output of one provider fetch, or of a merge
type Batch struct {
	Source     DataSource
	TimezoneID string
	Hourly     []HourlyRecord
	Daily      []DailyRecord
}

// IsEmpty reports whether the batch carries no records at all
func (b *Batch) IsEmpty() bool {
	return b == nil || (len(b.Hourly) == 0 && len(b.Daily) == 0)
}

// Tag stamps every record with the coordinate and data source it is stored under
func (b *Batch) Tag(coord Coordinate, source DataSource) {
	b.Source = source
	for i := range b.Hourly {
		b.Hourly[i].Latitude = coord.Latitude
		b.Hourly[i].Longitude = coord.Longitude
		b.Hourly[i].DataSource = source
	}
	for i := range b.Daily {
		b.Daily[i].Latitude = coord.Latitude
		b.Daily[i].Longitude = coord.Longitude
		b.Daily[i].DataSource = source
	}
}

// Forecast is the read-time projection over the store
type Forecast struct {
	Location   Location       `json:"location"`
	DataSource DataSource     `json:"data_source"`
	Hourly     []HourlyRecord `json:"hourly"`
	Daily      []DailyRecord  `json:"daily"`
}

// IsEmpty reports whether the projection has no records
func (f *Forecast) IsEmpty() bool {
	return f == nil || (len(f.Hourly) == 0 && len(f.Daily) == 0)
}

// TrimBefore drops records whose datetime is older than cutoff
func (f *Forecast) TrimBefore(cutoff int64) {
	hourly := f.Hourly[:0]
	for _, h := range f.Hourly {
		if h.Datetime >= cutoff {
			hourly = append(hourly, h)
		}
	}
	f.Hourly = hourly

	daily := f.Daily[:0]
	for _, d := range f.Daily {
		if d.Datetime >= cutoff {
			daily = append(daily, d)
		}
	}
	f.Daily = daily
}

// SortHourly orders hourly records ascending by datetime
func SortHourly(records []HourlyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Datetime < records[j].Datetime
	})
}

// SortDaily orders daily records ascending by datetime
func SortDaily(records []DailyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Datetime < records[j].Datetime
	})
}
