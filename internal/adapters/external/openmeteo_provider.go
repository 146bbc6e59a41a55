package external

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

const defaultOpenMeteoBaseURL = "https://api.open-meteo.com/v1"

var (
	openMeteoHourlyVariables = []string{
		"temperature_2m", "apparent_temperature", "pressure_msl", "relative_humidity_2m",
		"uv_index", "cloud_cover", "visibility", "wind_speed_10m", "wind_direction_10m",
		"weather_code", "precipitation_probability", "precipitation",
	}
	openMeteoDailyVariables = []string{
		"temperature_2m_min", "temperature_2m_max", "pressure_msl_mean", "relative_humidity_2m_mean",
		"uv_index_max", "cloud_cover_mean", "wind_speed_10m_max", "wind_direction_10m_dominant",
		"weather_code", "precipitation_sum", "sunrise", "sunset",
	}
)

// OpenMeteoProviderAdapter implements ForecastProvider for the keyless Open-Meteo API
type OpenMeteoProviderAdapter struct {
	baseURL string
	days    int
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Days    int
	Client  HTTPClient
	Logger  ports.Logger
}

type openMeteoHourly struct {
	Time                     []int64   `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	ApparentTemperature      []float64 `json:"apparent_temperature"`
	Pressure                 []float64 `json:"pressure_msl"`
	Humidity                 []float64 `json:"relative_humidity_2m"`
	UVIndex                  []float64 `json:"uv_index"`
	CloudCover               []float64 `json:"cloud_cover"`
	Visibility               []float64 `json:"visibility"`
	WindSpeed                []float64 `json:"wind_speed_10m"`
	WindDirection            []float64 `json:"wind_direction_10m"`
	WeatherCode              []int     `json:"weather_code"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	Precipitation            []float64 `json:"precipitation"`
}

type openMeteoDaily struct {
	Time          []int64   `json:"time"`
	TempMin       []float64 `json:"temperature_2m_min"`
	TempMax       []float64 `json:"temperature_2m_max"`
	Pressure      []float64 `json:"pressure_msl_mean"`
	Humidity      []float64 `json:"relative_humidity_2m_mean"`
	UVIndex       []float64 `json:"uv_index_max"`
	CloudCover    []float64 `json:"cloud_cover_mean"`
	WindSpeed     []float64 `json:"wind_speed_10m_max"`
	WindDirection []float64 `json:"wind_direction_10m_dominant"`
	WeatherCode   []int     `json:"weather_code"`
	Precipitation []float64 `json:"precipitation_sum"`
	Sunrise       []int64   `json:"sunrise"`
	Sunset        []int64   `json:"sunset"`
}

// openMeteoForecast is the /forecast response body requested with timeformat=unixtime.
// Null array elements decode to zero.
type openMeteoForecast struct {
	Timezone         string          `json:"timezone"`
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	Hourly           *openMeteoHourly `json:"hourly"`
	Daily            *openMeteoDaily  `json:"daily"`
}

func (*openMeteoForecast) Source() forecast.DataSource {
	return forecast.DataSourceOpenMeteo
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenMeteoBaseURL
	}
	days := params.Days
	if days <= 0 {
		days = defaultForecastDays
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(0)
	}

	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		days:    days,
		client:  client,
		logger:  params.Logger,
	}
}

// Fetch retrieves hourly and daily forecasts for the coordinate
func (p *OpenMeteoProviderAdapter) Fetch(ctx context.Context, coord forecast.Coordinate) (ports.RawForecast, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', 4, 64))
	query.Set("hourly", strings.Join(openMeteoHourlyVariables, ","))
	query.Set("daily", strings.Join(openMeteoDailyVariables, ","))
	query.Set("timezone", "auto")
	query.Set("timeformat", "unixtime")
	query.Set("forecast_days", strconv.Itoa(p.days))

	var raw openMeteoForecast
	if err := getJSON(ctx, p.client, p.logger, p.GetProviderName(), fmt.Sprintf("%s/forecast?%s", p.baseURL, query.Encode()), &raw); err != nil {
		return nil, err
	}
	if raw.Hourly == nil && raw.Daily == nil {
		return nil, errors.NewUpstreamMalformedError("openmeteo response has no hourly or daily section", nil)
	}

	return &raw, nil
}

// GetProviderName returns the name of this forecast provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return forecast.DataSourceOpenMeteo.String()
}

// DataSource returns the tag stored with this provider's records
func (p *OpenMeteoProviderAdapter) DataSource() forecast.DataSource {
	return forecast.DataSourceOpenMeteo
}

func (r *openMeteoForecast) normalize() (*forecast.Batch, error) {
	batch := &forecast.Batch{
		Source:     forecast.DataSourceOpenMeteo,
		TimezoneID: r.Timezone,
	}

	if h := r.Hourly; h != nil {
		n := len(h.Time)
		if !sameLength(n, len(h.Temperature), len(h.ApparentTemperature), len(h.Pressure), len(h.Humidity),
			len(h.UVIndex), len(h.CloudCover), len(h.Visibility), len(h.WindSpeed), len(h.WindDirection),
			len(h.WeatherCode), len(h.PrecipitationProbability), len(h.Precipitation)) {
			return nil, errors.NewUpstreamMalformedError("openmeteo hourly arrays differ in length", nil)
		}
		batch.Hourly = make([]forecast.HourlyRecord, 0, n)
		for i := 0; i < n; i++ {
			batch.Hourly = append(batch.Hourly, forecast.HourlyRecord{
				Datetime:                 forecast.HourStart(h.Time[i]),
				Temperature:              h.Temperature[i],
				FeelsLike:                h.ApparentTemperature[i],
				Pressure:                 h.Pressure[i],
				Humidity:                 roundedPercent(h.Humidity[i]),
				UVI:                      forecast.ClampNonNegative(h.UVIndex[i]),
				Clouds:                   roundedPercent(h.CloudCover[i]),
				Visibility:               int(math.Round(forecast.ClampNonNegative(h.Visibility[i]))),
				WindSpeed:                forecast.KphToMs(forecast.ClampNonNegative(h.WindSpeed[i])),
				WindDegrees:              forecast.NormalizeDegrees(int(math.Round(h.WindDirection[i]))),
				WeatherCode:              weatherCode(wmoConditions, h.WeatherCode[i]),
				PrecipitationProbability: roundedPercent(h.PrecipitationProbability[i]),
				PrecipitationAmount:      forecast.ClampNonNegative(h.Precipitation[i]),
				DataSource:               forecast.DataSourceOpenMeteo,
			})
		}
	}

	if d := r.Daily; d != nil {
		n := len(d.Time)
		if !sameLength(n, len(d.TempMin), len(d.TempMax), len(d.Pressure), len(d.Humidity), len(d.UVIndex),
			len(d.CloudCover), len(d.WindSpeed), len(d.WindDirection), len(d.WeatherCode),
			len(d.Precipitation), len(d.Sunrise), len(d.Sunset)) {
			return nil, errors.NewUpstreamMalformedError("openmeteo daily arrays differ in length", nil)
		}
		batch.Daily = make([]forecast.DailyRecord, 0, n)
		for i := 0; i < n; i++ {
			dayStart := forecast.DayStartFromUnix(d.Time[i], r.UTCOffsetSeconds)
			batch.Daily = append(batch.Daily, forecast.DailyRecord{
				Datetime:            dayStart,
				MinTemperature:      d.TempMin[i],
				MaxTemperature:      d.TempMax[i],
				Pressure:            d.Pressure[i],
				Humidity:            roundedPercent(d.Humidity[i]),
				UVI:                 forecast.ClampNonNegative(d.UVIndex[i]),
				Clouds:              roundedPercent(d.CloudCover[i]),
				WindSpeed:           forecast.KphToMs(forecast.ClampNonNegative(d.WindSpeed[i])),
				WindDegrees:         forecast.NormalizeDegrees(int(math.Round(d.WindDirection[i]))),
				WeatherCode:         weatherCode(wmoConditions, d.WeatherCode[i]),
				PrecipitationAmount: forecast.ClampNonNegative(d.Precipitation[i]),
				MoonPhaseID:         forecast.MoonPhaseForDate(time.Unix(dayStart, 0).Add(12 * time.Hour)),
				Sunrise:             d.Sunrise[i],
				Sunset:              d.Sunset[i],
				DataSource:          forecast.DataSourceOpenMeteo,
			})
		}
	}

	return batch, nil
}

func sameLength(n int, lengths ...int) bool {
	for _, l := range lengths {
		if l != n {
			return false
		}
	}
	return true
}

func roundedPercent(v float64) int {
	return forecast.ClampPercent(int(math.Round(v)))
}
