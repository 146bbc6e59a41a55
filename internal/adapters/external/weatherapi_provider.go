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

const (
	defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"
	defaultForecastDays      = 7
	weatherAPIAstroLayout    = "2006-01-02 03:04 PM"
)

// WeatherAPIProviderAdapter implements ForecastProvider for WeatherAPI.com forecast.json
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	days    int
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Days    int
	Client  HTTPClient
	Logger  ports.Logger
}

type weatherAPICondition struct {
	Code int `json:"code"`
}

type weatherAPIHour struct {
	TimeEpoch    int64               `json:"time_epoch"`
	TempC        float64             `json:"temp_c"`
	FeelsLikeC   float64             `json:"feelslike_c"`
	PressureMb   float64             `json:"pressure_mb"`
	Humidity     int                 `json:"humidity"`
	UV           float64             `json:"uv"`
	Cloud        int                 `json:"cloud"`
	VisKm        float64             `json:"vis_km"`
	WindKph      float64             `json:"wind_kph"`
	WindDegree   int                 `json:"wind_degree"`
	Condition    weatherAPICondition `json:"condition"`
	ChanceOfRain int                 `json:"chance_of_rain"`
	ChanceOfSnow int                 `json:"chance_of_snow"`
	PrecipMm     float64             `json:"precip_mm"`
}

type weatherAPIDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC     float64             `json:"maxtemp_c"`
		MinTempC     float64             `json:"mintemp_c"`
		MaxWindKph   float64             `json:"maxwind_kph"`
		TotalPrecipM float64             `json:"totalprecip_mm"`
		AvgHumidity  float64             `json:"avghumidity"`
		UV           float64             `json:"uv"`
		Condition    weatherAPICondition `json:"condition"`
	} `json:"day"`
	Astro struct {
		Sunrise   string `json:"sunrise"`
		Sunset    string `json:"sunset"`
		MoonPhase string `json:"moon_phase"`
	} `json:"astro"`
	Hour []weatherAPIHour `json:"hour"`
}

// weatherAPIForecast is the forecast.json response body
type weatherAPIForecast struct {
	Location struct {
		Name string `json:"name"`
		TzID string `json:"tz_id"`
	} `json:"location"`
	Forecast *weatherAPIForecastDays `json:"forecast"`
}

type weatherAPIForecastDays struct {
	ForecastDay []weatherAPIDay `json:"forecastday"`
}

func (*weatherAPIForecast) Source() forecast.DataSource {
	return forecast.DataSourceWeatherAPI
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultWeatherAPIBaseURL
	}
	days := params.Days
	if days <= 0 {
		days = defaultForecastDays
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(0)
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		days:    days,
		client:  client,
		logger:  params.Logger,
	}
}

// Fetch retrieves the multi-day forecast for the coordinate
func (p *WeatherAPIProviderAdapter) Fetch(ctx context.Context, coord forecast.Coordinate) (ports.RawForecast, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("key", p.apiKey)
	query.Set("q", fmt.Sprintf("%.4f,%.4f", coord.Latitude, coord.Longitude))
	query.Set("days", strconv.Itoa(p.days))
	query.Set("aqi", "no")
	query.Set("alerts", "no")

	var raw weatherAPIForecast
	if err := getJSON(ctx, p.client, p.logger, p.GetProviderName(), fmt.Sprintf("%s/forecast.json?%s", p.baseURL, query.Encode()), &raw); err != nil {
		return nil, err
	}
	if raw.Forecast == nil || len(raw.Forecast.ForecastDay) == 0 {
		return nil, errors.NewUpstreamMalformedError("weatherapi response has no forecast section", nil)
	}

	return &raw, nil
}

// GetProviderName returns the name of this forecast provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return forecast.DataSourceWeatherAPI.String()
}

// DataSource returns the tag stored with this provider's records
func (p *WeatherAPIProviderAdapter) DataSource() forecast.DataSource {
	return forecast.DataSourceWeatherAPI
}

func (r *weatherAPIForecast) normalize() (*forecast.Batch, error) {
	if r.Forecast == nil {
		return nil, errors.NewUpstreamMalformedError("weatherapi response has no forecast section", nil)
	}

	loc := time.UTC
	if r.Location.TzID != "" {
		if l, err := time.LoadLocation(r.Location.TzID); err == nil {
			loc = l
		}
	}

	batch := &forecast.Batch{
		Source:     forecast.DataSourceWeatherAPI,
		TimezoneID: r.Location.TzID,
	}

	for _, fd := range r.Forecast.ForecastDay {
		dayStart, err := forecast.DayStartFromLocalDate(fd.Date)
		if err != nil {
			return nil, errors.NewUpstreamMalformedError(fmt.Sprintf("weatherapi returned invalid date %q", fd.Date), err)
		}

		var pressureSum float64
		var cloudSum int
		windDegrees, maxWind := 0, -1.0
		for _, h := range fd.Hour {
			pressureSum += h.PressureMb
			cloudSum += h.Cloud
			if h.WindKph > maxWind {
				maxWind = h.WindKph
				windDegrees = h.WindDegree
			}

			batch.Hourly = append(batch.Hourly, forecast.HourlyRecord{
				Datetime:                 forecast.HourStart(h.TimeEpoch),
				Temperature:              h.TempC,
				FeelsLike:                h.FeelsLikeC,
				Pressure:                 h.PressureMb,
				Humidity:                 forecast.ClampPercent(h.Humidity),
				UVI:                      forecast.ClampNonNegative(h.UV),
				Clouds:                   forecast.ClampPercent(h.Cloud),
				Visibility:               forecast.KmToMeters(forecast.ClampNonNegative(h.VisKm)),
				WindSpeed:                forecast.KphToMs(forecast.ClampNonNegative(h.WindKph)),
				WindDegrees:              forecast.NormalizeDegrees(h.WindDegree),
				WeatherCode:              weatherCode(weatherAPIConditions, h.Condition.Code),
				PrecipitationProbability: forecast.ClampPercent(max(h.ChanceOfRain, h.ChanceOfSnow)),
				PrecipitationAmount:      forecast.ClampNonNegative(h.PrecipMm),
				DataSource:               forecast.DataSourceWeatherAPI,
			})
		}

		daily := forecast.DailyRecord{
			Datetime:            dayStart,
			MinTemperature:      fd.Day.MinTempC,
			MaxTemperature:      fd.Day.MaxTempC,
			Humidity:            forecast.ClampPercent(int(math.Round(fd.Day.AvgHumidity))),
			UVI:                 forecast.ClampNonNegative(fd.Day.UV),
			WindSpeed:           forecast.KphToMs(forecast.ClampNonNegative(fd.Day.MaxWindKph)),
			WindDegrees:         forecast.NormalizeDegrees(windDegrees),
			WeatherCode:         weatherCode(weatherAPIConditions, fd.Day.Condition.Code),
			PrecipitationAmount: forecast.ClampNonNegative(fd.Day.TotalPrecipM),
			MoonPhaseID:         forecast.MoonPhaseFromName(fd.Astro.MoonPhase),
			Sunrise:             parseAstroTime(fd.Date, fd.Astro.Sunrise, loc),
			Sunset:              parseAstroTime(fd.Date, fd.Astro.Sunset, loc),
			DataSource:          forecast.DataSourceWeatherAPI,
		}
		if n := len(fd.Hour); n > 0 {
			daily.Pressure = math.Round(pressureSum/float64(n)*10) / 10
			daily.Clouds = forecast.ClampPercent(int(math.Round(float64(cloudSum) / float64(n))))
		}
		if daily.MoonPhaseID == forecast.MoonPhaseUnknown {
			daily.MoonPhaseID = forecast.MoonPhaseForDate(time.Unix(dayStart, 0).Add(12 * time.Hour))
		}
		batch.Daily = append(batch.Daily, daily)
	}

	return batch, nil
}

// parseAstroTime parses "06:12 AM" on the given local date; "No sunrise" style values yield 0
func parseAstroTime(date, clock string, loc *time.Location) int64 {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0
	}
	t, err := time.ParseInLocation(weatherAPIAstroLayout, date+" "+strings.ToUpper(clock), loc)
	if err != nil {
		return 0
	}
	return t.Unix()
}

