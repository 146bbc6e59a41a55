package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/3.0"

// OpenWeatherMapProviderAdapter implements ForecastProvider for the One Call 3.0 API
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type owmCondition struct {
	ID int `json:"id"`
}

type owmPrecipitation struct {
	OneHour float64 `json:"1h"`
}

type owmHourly struct {
	Dt         int64             `json:"dt"`
	Temp       float64           `json:"temp"`
	FeelsLike  float64           `json:"feels_like"`
	Pressure   float64           `json:"pressure"`
	Humidity   int               `json:"humidity"`
	UVI        float64           `json:"uvi"`
	Clouds     int               `json:"clouds"`
	Visibility int               `json:"visibility"`
	WindSpeed  float64           `json:"wind_speed"`
	WindDeg    int               `json:"wind_deg"`
	Weather    []owmCondition    `json:"weather"`
	Pop        float64           `json:"pop"`
	Rain       *owmPrecipitation `json:"rain"`
	Snow       *owmPrecipitation `json:"snow"`
}

type owmDaily struct {
	Dt        int64   `json:"dt"`
	Sunrise   int64   `json:"sunrise"`
	Sunset    int64   `json:"sunset"`
	MoonPhase float64 `json:"moon_phase"`
	Temp      struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Pressure  float64        `json:"pressure"`
	Humidity  int            `json:"humidity"`
	UVI       float64        `json:"uvi"`
	Clouds    int            `json:"clouds"`
	WindSpeed float64        `json:"wind_speed"`
	WindDeg   int            `json:"wind_deg"`
	Weather   []owmCondition `json:"weather"`
	Rain      float64        `json:"rain"`
	Snow      float64        `json:"snow"`
}

// openWeatherMapForecast is the One Call response body
type openWeatherMapForecast struct {
	Timezone       string      `json:"timezone"`
	TimezoneOffset int         `json:"timezone_offset"`
	Hourly         []owmHourly `json:"hourly"`
	Daily          []owmDaily  `json:"daily"`
}

func (*openWeatherMapForecast) Source() forecast.DataSource {
	return forecast.DataSourceOpenWeatherMap
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(0)
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// Fetch retrieves hourly and daily forecasts for the coordinate
func (p *OpenWeatherMapProviderAdapter) Fetch(ctx context.Context, coord forecast.Coordinate) (ports.RawForecast, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', 4, 64))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	query.Set("exclude", "current,minutely,alerts")

	var raw openWeatherMapForecast
	if err := getJSON(ctx, p.client, p.logger, p.GetProviderName(), fmt.Sprintf("%s/onecall?%s", p.baseURL, query.Encode()), &raw); err != nil {
		return nil, err
	}
	if len(raw.Hourly) == 0 && len(raw.Daily) == 0 {
		return nil, errors.NewUpstreamMalformedError("openweathermap response has no hourly or daily section", nil)
	}

	return &raw, nil
}

// GetProviderName returns the name of this forecast provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return forecast.DataSourceOpenWeatherMap.String()
}

// DataSource returns the tag stored with this provider's records
func (p *OpenWeatherMapProviderAdapter) DataSource() forecast.DataSource {
	return forecast.DataSourceOpenWeatherMap
}

func (r *openWeatherMapForecast) normalize() *forecast.Batch {
	batch := &forecast.Batch{
		Source:     forecast.DataSourceOpenWeatherMap,
		TimezoneID: r.Timezone,
		Hourly:     make([]forecast.HourlyRecord, 0, len(r.Hourly)),
		Daily:      make([]forecast.DailyRecord, 0, len(r.Daily)),
	}

	for _, h := range r.Hourly {
		var amount float64
		if h.Rain != nil {
			amount += h.Rain.OneHour
		}
		if h.Snow != nil {
			amount += h.Snow.OneHour
		}
		batch.Hourly = append(batch.Hourly, forecast.HourlyRecord{
			Datetime:                 forecast.HourStart(h.Dt),
			Temperature:              h.Temp,
			FeelsLike:                h.FeelsLike,
			Pressure:                 h.Pressure,
			Humidity:                 forecast.ClampPercent(h.Humidity),
			UVI:                      forecast.ClampNonNegative(h.UVI),
			Clouds:                   forecast.ClampPercent(h.Clouds),
			Visibility:               h.Visibility,
			WindSpeed:                forecast.ClampNonNegative(h.WindSpeed),
			WindDegrees:              forecast.NormalizeDegrees(h.WindDeg),
			WeatherCode:              weatherCode(openWeatherMapConditions, firstConditionID(h.Weather)),
			PrecipitationProbability: forecast.FractionToPercent(h.Pop),
			PrecipitationAmount:      forecast.ClampNonNegative(amount),
			DataSource:               forecast.DataSourceOpenWeatherMap,
		})
	}

	for _, d := range r.Daily {
		batch.Daily = append(batch.Daily, forecast.DailyRecord{
			Datetime:            forecast.DayStartFromUnix(d.Dt, r.TimezoneOffset),
			MinTemperature:      d.Temp.Min,
			MaxTemperature:      d.Temp.Max,
			Pressure:            d.Pressure,
			Humidity:            forecast.ClampPercent(d.Humidity),
			UVI:                 forecast.ClampNonNegative(d.UVI),
			Clouds:              forecast.ClampPercent(d.Clouds),
			WindSpeed:           forecast.ClampNonNegative(d.WindSpeed),
			WindDegrees:         forecast.NormalizeDegrees(d.WindDeg),
			WeatherCode:         weatherCode(openWeatherMapConditions, firstConditionID(d.Weather)),
			PrecipitationAmount: forecast.ClampNonNegative(d.Rain + d.Snow),
			MoonPhaseID:         forecast.MoonPhaseFromFraction(d.MoonPhase),
			Sunrise:             d.Sunrise,
			Sunset:              d.Sunset,
			DataSource:          forecast.DataSourceOpenWeatherMap,
		})
	}

	return batch
}

func firstConditionID(conditions []owmCondition) int {
	if len(conditions) == 0 {
		return -1
	}
	return conditions[0].ID
}
