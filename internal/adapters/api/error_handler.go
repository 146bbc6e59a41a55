package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	errorspkg "forecastsync.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleError maps application errors to HTTP status codes
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, response := errorResponse(err)
	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "status", statusCode, "error", err)
	}
	c.JSON(statusCode, response)
}

func errorResponse(err error) (int, ErrorResponse) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"}
	}

	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}

	code := appErr.Type.String()
	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, ErrorResponse{Error: appErr.Message, Code: code}
	case errorspkg.NotFoundError:
		return http.StatusNotFound, ErrorResponse{Error: appErr.Message, Code: code}
	case errorspkg.NoActiveLocationError:
		return http.StatusConflict, ErrorResponse{Error: appErr.Message, Code: code}
	case errorspkg.UpstreamMalformedError:
		return http.StatusBadGateway, ErrorResponse{Error: "Weather provider returned an invalid response", Code: code}
	case errorspkg.UpstreamUnavailableError:
		return http.StatusServiceUnavailable, ErrorResponse{Error: "Weather provider unavailable", Code: code}
	case errorspkg.StoreWriteError, errorspkg.DatabaseError:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Code: code}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}
}
