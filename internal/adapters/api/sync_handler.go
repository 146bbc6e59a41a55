package api

import (
	"net/http"

	"forecastsync.app/internal/adapters/infrastructure"
	"forecastsync.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse represents the aggregated health of the service
type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// requestSync handles POST /api/sync requests
func (s *HTTPServerAdapter) requestSync(c *gin.Context) {
	result, err := s.syncUseCase.RequestSync(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getSyncStatus handles GET /api/sync/status requests
func (s *HTTPServerAdapter) getSyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.syncUseCase.Status())
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	status := infrastructure.OverallStatus(results)

	code := http.StatusOK
	if status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: status, Components: results})
}
