package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantContains string
	}{
		{
			name:         "validation error keeps message",
			err:          errors.NewValidationError("lat and lon must be given together"),
			wantStatus:   http.StatusBadRequest,
			wantCode:     "VALIDATION_ERROR",
			wantContains: "lat and lon",
		},
		{
			name:       "not found",
			err:        errors.NewNotFoundError("no place found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND_ERROR",
		},
		{
			name:       "no active location",
			err:        errors.NewNoActiveLocationError(),
			wantStatus: http.StatusConflict,
			wantCode:   "NO_ACTIVE_LOCATION",
		},
		{
			name:         "wrapped upstream unavailable",
			err:          fmt.Errorf("fetch: %w", errors.NewUpstreamUnavailableError("breaker open", nil)),
			wantStatus:   http.StatusServiceUnavailable,
			wantCode:     "UPSTREAM_UNAVAILABLE",
			wantContains: "Weather provider unavailable",
		},
		{
			name:       "upstream malformed",
			err:        errors.NewUpstreamMalformedError("bad payload", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_MALFORMED",
		},
		{
			name:         "database error hides cause",
			err:          errors.NewDatabaseError("query failed", assert.AnError),
			wantStatus:   http.StatusInternalServerError,
			wantCode:     "DATABASE_ERROR",
			wantContains: "Internal server error",
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("wait: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:         "plain error",
			err:          assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantContains: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, response := errorResponse(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, response.Code)
			if tt.wantContains != "" {
				assert.Contains(t, response.Error, tt.wantContains)
			}
		})
	}
}
