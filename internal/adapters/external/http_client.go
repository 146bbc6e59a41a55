// Package external provides adapters for external services.
// These adapters implement ports for forecast providers, geocoders and caches.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET request and decodes a JSON body into out.
// Transport failures, 429 and 5xx map to UpstreamUnavailable; any other non-200
// status and undecodable bodies map to UpstreamMalformed.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, provider, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewUpstreamMalformedError(fmt.Sprintf("failed to build %s request", provider), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewUpstreamUnavailableError(fmt.Sprintf("failed to call %s", provider), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
			logger.Warn("Failed to close response body", ports.F("provider", provider), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := fmt.Sprintf("%s returned status %d", provider, resp.StatusCode)
		if len(body) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, body)
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return errors.NewUpstreamUnavailableError(msg, nil)
		}
		return errors.NewUpstreamMalformedError(msg, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return errors.NewUpstreamUnavailableError(fmt.Sprintf("%s request interrupted", provider), ctx.Err())
		}
		return errors.NewUpstreamMalformedError(fmt.Sprintf("failed to decode %s response", provider), err)
	}

	return nil
}
