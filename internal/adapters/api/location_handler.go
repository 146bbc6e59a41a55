package api

import (
	"log/slog"
	"net/http"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/location"
	"forecastsync.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// SelectLocationRequest represents the HTTP request for making a location active
type SelectLocationRequest struct {
	Name       string   `json:"name" binding:"required"`
	Latitude   *float64 `json:"latitude" binding:"required,latitude"`
	Longitude  *float64 `json:"longitude" binding:"required,longitude"`
	TimezoneID string   `json:"timezone_id"`
}

// NearbyRequest represents the HTTP request for resolving the place at a coordinate
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// LocationsResponse wraps a list of locations
type LocationsResponse struct {
	Locations []forecast.Location `json:"locations"`
}

// LocationResponse wraps one location
type LocationResponse struct {
	Location *forecast.Location `json:"location"`
}

// getRecentLocations handles GET /api/locations/recent requests
func (s *HTTPServerAdapter) getRecentLocations(c *gin.Context) {
	locations, err := s.weatherUseCase.GetRecentLocations(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	if locations == nil {
		locations = []forecast.Location{}
	}

	c.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}

// searchLocations handles GET /api/locations/search requests
func (s *HTTPServerAdapter) searchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		s.handleError(c, errors.NewValidationError("q parameter is required"))
		return
	}

	locations, err := s.locationUseCase.Search(c.Request.Context(), query)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if locations == nil {
		locations = []forecast.Location{}
	}

	c.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}

// selectLocation handles POST /api/locations/select requests
func (s *HTTPServerAdapter) selectLocation(c *gin.Context) {
	var httpReq SelectLocationRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	selected, err := s.locationUseCase.Select(c.Request.Context(), location.SelectParams{
		Name:       httpReq.Name,
		Latitude:   *httpReq.Latitude,
		Longitude:  *httpReq.Longitude,
		TimezoneID: httpReq.TimezoneID,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LocationResponse{Location: selected})
}

// resolveNearby handles POST /api/locations/nearby requests
func (s *HTTPServerAdapter) resolveNearby(c *gin.Context) {
	var httpReq NearbyRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	resolved, err := s.locationUseCase.ResolveNearby(c.Request.Context(), *httpReq.Latitude, *httpReq.Longitude)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LocationResponse{Location: resolved})
}
