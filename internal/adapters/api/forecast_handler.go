package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/weather"
	errorspkg "forecastsync.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

const (
	defaultWatchTimeout = 30 * time.Second
	maxWatchTimeout     = 120 * time.Second
	// room to write the response after the watch gives up
	watchWriteGrace     = 5 * time.Second
)

// ForecastQuery represents the query parameters of the forecast endpoints.
// Without a coordinate the active location is used.
type ForecastQuery struct {
	Latitude       *float64 `form:"lat" binding:"omitempty,latitude"`
	Longitude      *float64 `form:"lon" binding:"omitempty,longitude"`
	Source         string   `form:"source" binding:"omitempty,datasource"`
	TimeoutSeconds int      `form:"timeout_seconds" binding:"omitempty,min=1"`
}

// ForecastResponse wraps a projection; Forecast is null when nothing is stored yet
type ForecastResponse struct {
	Forecast *forecast.Forecast `json:"forecast"`
}

func (q ForecastQuery) hasCoordinate() (bool, error) {
	switch {
	case q.Latitude == nil && q.Longitude == nil:
		return false, nil
	case q.Latitude != nil && q.Longitude != nil:
		return true, nil
	default:
		return false, errorspkg.NewValidationError("lat and lon must be given together")
	}
}

func (q ForecastQuery) request() weather.ForecastRequest {
	return weather.ForecastRequest{Latitude: *q.Latitude, Longitude: *q.Longitude, Source: q.Source}
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query ForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("Forecast query binding error", "error", err)
		s.handleError(c, errorspkg.NewValidationError("Invalid forecast query"))
		return
	}

	withCoordinate, err := query.hasCoordinate()
	if err != nil {
		s.handleError(c, err)
		return
	}

	var result *forecast.Forecast
	if withCoordinate {
		result, err = s.weatherUseCase.GetForecast(c.Request.Context(), query.request())
	} else {
		result, err = s.weatherUseCase.GetActiveForecast(c.Request.Context(), query.Source)
	}
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Forecast: result})
}

// watchForecast handles GET /api/forecast/watch requests. It long-polls until the
// next write for the coordinate and answers 204 when the timeout passes first.
func (s *HTTPServerAdapter) watchForecast(c *gin.Context) {
	var query ForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errorspkg.NewValidationError("Invalid forecast query"))
		return
	}

	withCoordinate, err := query.hasCoordinate()
	if err != nil {
		s.handleError(c, err)
		return
	}
	if !withCoordinate {
		s.handleError(c, errorspkg.NewValidationError("lat and lon are required"))
		return
	}

	timeout := defaultWatchTimeout
	if query.TimeoutSeconds > 0 {
		timeout = min(time.Duration(query.TimeoutSeconds)*time.Second, maxWatchTimeout)
	}
	// the server-wide WriteTimeout is shorter than a long poll may last
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Now().Add(timeout + watchWriteGrace)); err != nil {
		slog.Debug("Watch write deadline not extended", "error", err)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	result, err := s.weatherUseCase.WatchForecast(ctx, query.request())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			c.Status(http.StatusNoContent)
			return
		}
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Forecast: result})
}
