package external

import (
	"context"
	"net/http"
	"testing"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owmFixture = `{
	"timezone": "Europe/Kyiv",
	"timezone_offset": 10800,
	"hourly": [
		{"dt": 1700002800, "temp": 5.2, "feels_like": 2.1, "pressure": 1012, "humidity": 81, "uvi": 0.3,
		 "clouds": 75, "visibility": 10000, "wind_speed": 4.1, "wind_deg": 370,
		 "weather": [{"id": 500}], "pop": 0.46, "rain": {"1h": 0.35}},
		{"dt": 1699999200, "temp": 6.0, "feels_like": 3.4, "pressure": 1011, "humidity": 140, "uvi": -1,
		 "clouds": 68, "visibility": 9000, "wind_speed": 3.2, "wind_deg": -20,
		 "weather": [{"id": 803}], "pop": 0}
	],
	"daily": [
		{"dt": 1700042400, "sunrise": 1700024700, "sunset": 1700058000, "moon_phase": 0.5,
		 "temp": {"min": 1.5, "max": 7.25}, "pressure": 1010, "humidity": 70, "uvi": 1.2, "clouds": 40,
		 "wind_speed": 5.5, "wind_deg": 200, "weather": [{"id": 800}], "rain": 1.2, "snow": 0.3}
	]
}`

func TestOpenWeatherMapProvider_Fetch_Success(t *testing.T) {
	server := jsonServer(t, http.StatusOK, owmFixture, func(r *http.Request) {
		assert.Equal(t, "/onecall", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "50.4501", q.Get("lat"))
		assert.Equal(t, "30.5234", q.Get("lon"))
		assert.Equal(t, "test-api-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "current,minutely,alerts", q.Get("exclude"))
	})

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	raw, err := provider.Fetch(context.Background(), forecast.NewCoordinate(50.4501, 30.5234))
	require.NoError(t, err)
	assert.Equal(t, forecast.DataSourceOpenWeatherMap, raw.Source())

	batch, err := NewNormalizer().Normalize(forecast.DataSourceOpenWeatherMap, raw)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", batch.TimezoneID)

	require.Len(t, batch.Hourly, 2)
	first, second := batch.Hourly[0], batch.Hourly[1]
	assert.Equal(t, int64(1699999200), first.Datetime)
	assert.Equal(t, 100, first.Humidity)
	assert.Equal(t, 0.0, first.UVI)
	assert.Equal(t, 340, first.WindDegrees)
	assert.Equal(t, 0.0, first.PrecipitationAmount)
	assert.Equal(t, forecast.MustEncode(forecast.Condition{
		Scale: forecast.ScaleCoverage, Position: forecast.CoverageBroken, Base: forecast.BaseClouds,
	}), first.WeatherCode)

	assert.Equal(t, int64(1700002800), second.Datetime)
	assert.Equal(t, 5.2, second.Temperature)
	assert.Equal(t, 10, second.WindDegrees)
	assert.Equal(t, 46, second.PrecipitationProbability)
	assert.Equal(t, 0.35, second.PrecipitationAmount)
	assert.Equal(t, 10000, second.Visibility)
	assert.Equal(t, forecast.MustEncode(forecast.Condition{
		Scale: forecast.ScaleIntensity, Position: forecast.IntensityLight, Base: forecast.BaseRain,
	}), second.WeatherCode)
	assert.Equal(t, forecast.DataSourceOpenWeatherMap, second.DataSource)

	require.Len(t, batch.Daily, 1)
	day := batch.Daily[0]
	assert.Equal(t, int64(1700006400), day.Datetime)
	assert.Equal(t, 1.5, day.MinTemperature)
	assert.Equal(t, 7.25, day.MaxTemperature)
	assert.InDelta(t, 1.5, day.PrecipitationAmount, 1e-9)
	assert.Equal(t, forecast.MoonPhaseFull, day.MoonPhaseID)
	assert.Equal(t, int64(1700024700), day.Sunrise)
	assert.Equal(t, forecast.MustEncode(forecast.Condition{Base: forecast.BaseClear}), day.WeatherCode)
}

func TestOpenWeatherMapProvider_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		checkType func(error) bool
	}{
		{"ServerError", http.StatusServiceUnavailable, `{"message":"down"}`, errors.IsUpstreamUnavailableError},
		{"RateLimited", http.StatusTooManyRequests, `{}`, errors.IsUpstreamUnavailableError},
		{"InvalidKey", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, errors.IsUpstreamMalformedError},
		{"InvalidJSON", http.StatusOK, `{"hourly": [`, errors.IsUpstreamMalformedError},
		{"NoSections", http.StatusOK, `{"timezone": "UTC"}`, errors.IsUpstreamMalformedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, tt.status, tt.body, nil)
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  "key",
				BaseURL: server.URL,
				Logger:  setupLoggerMock(t),
			})

			raw, err := provider.Fetch(context.Background(), forecast.NewCoordinate(1, 2))
			assert.Nil(t, raw)
			require.Error(t, err)
			assert.True(t, tt.checkType(err), "unexpected error type: %v", err)
		})
	}
}

func TestOpenWeatherMapProvider_Fetch_Unreachable(t *testing.T) {
	server := jsonServer(t, http.StatusOK, owmFixture, nil)
	server.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	_, err := provider.Fetch(context.Background(), forecast.NewCoordinate(1, 2))
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamUnavailableError(err))
}

func TestOpenWeatherMapProvider_Fetch_InvalidCoordinate(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "key"})

	_, err := provider.Fetch(context.Background(), forecast.Coordinate{Latitude: 91, Longitude: 0})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "openweathermap", provider.GetProviderName())
	assert.Equal(t, forecast.DataSourceOpenWeatherMap, provider.DataSource())
}
