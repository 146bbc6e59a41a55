package external

import (
	"context"
	"testing"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/mocks"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestForecastProviderLoggingDecorator_Success(t *testing.T) {
	inner := namedProvider(t, forecast.DataSourceOpenMeteo)
	inner.EXPECT().Fetch(mock.Anything, mock.Anything).Return(&openMeteoForecast{}, nil).Once()

	logger := &testLogger{}
	decorator := NewForecastProviderLoggingDecorator(inner, logger)

	raw, err := decorator.Fetch(context.Background(), forecast.NewCoordinate(50.45, 30.52))
	require.NoError(t, err)
	assert.NotNil(t, raw)

	entries := logger.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].level)
	assert.Equal(t, "Forecast API request started", entries[0].message)
	assert.Equal(t, "openmeteo", entries[0].fields["provider"])
	assert.Equal(t, "50.4500,30.5200", entries[0].fields["location"])
	assert.Equal(t, "request", entries[0].fields["event"])

	assert.Equal(t, "Forecast API request completed", entries[1].message)
	assert.Equal(t, "response", entries[1].fields["event"])
	assert.Contains(t, entries[1].fields, "duration_ms")

	assert.Equal(t, "openmeteo", decorator.GetProviderName())
	assert.Equal(t, forecast.DataSourceOpenMeteo, decorator.DataSource())
}

func TestForecastProviderLoggingDecorator_Error(t *testing.T) {
	inner := namedProvider(t, forecast.DataSourceWeatherAPI)
	inner.EXPECT().Fetch(mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamUnavailableError("weatherapi returned status 503", nil)).Once()

	logger := &testLogger{}
	decorator := NewForecastProviderLoggingDecorator(inner, logger)

	raw, err := decorator.Fetch(context.Background(), forecast.NewCoordinate(1, 2))
	assert.Nil(t, raw)
	assert.True(t, errors.IsUpstreamUnavailableError(err))

	entries := logger.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "ERROR", entries[1].level)
	assert.Equal(t, "Forecast API request failed", entries[1].message)
	assert.Contains(t, entries[1].fields["error"], "status 503")
}

func TestSourceSelectorLoggingDecorator(t *testing.T) {
	selector := mocks.NewSourceSelector(t)
	provider := namedProvider(t, forecast.DataSourceOpenMeteo)
	selector.EXPECT().Select(ports.SelectionConfig{Source: "openmeteo"}).
		Return([]ports.ForecastProvider{provider}, nil).Once()
	selector.EXPECT().Select(ports.SelectionConfig{Source: "bogus"}).
		Return(nil, errors.NewValidationError("unknown forecast source")).Once()
	selector.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 1}).Once()

	logger := &testLogger{}
	decorator := NewSourceSelectorLoggingDecorator(selector, logger)

	selected, err := decorator.Select(ports.SelectionConfig{Source: "openmeteo"})
	require.NoError(t, err)
	assert.Len(t, selected, 1)

	_, err = decorator.Select(ports.SelectionConfig{Source: "bogus"})
	assert.True(t, errors.IsValidationError(err))

	entries := logger.snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"openmeteo"}, entries[0].fields["providers"])
	assert.Equal(t, "select_error", entries[1].fields["event"])

	info := decorator.GetProviderInfo()
	assert.Equal(t, true, info["logging_enabled"])
}
