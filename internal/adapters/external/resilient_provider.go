package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ResilienceConfig controls the per-provider rate limiter and circuit breaker
type ResilienceConfig struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// ResilientForecastProvider guards a provider with a token bucket and a circuit breaker.
// Requests are never retried; an open breaker fails fast with UpstreamUnavailable.
type ResilientForecastProvider struct {
	provider ports.ForecastProvider
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
}

// NewResilientForecastProvider wraps provider with the given limits
func NewResilientForecastProvider(provider ports.ForecastProvider, config ResilienceConfig) *ResilientForecastProvider {
	limit := rate.Inf
	if config.RateLimitRPS > 0 {
		limit = rate.Limit(config.RateLimitRPS)
	}
	burst := config.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	maxFailures := config.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        provider.GetProviderName(),
		MaxRequests: 1,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.IsUpstreamUnavailableError(err)
		},
	})

	return &ResilientForecastProvider{
		provider: provider,
		limiter:  rate.NewLimiter(limit, burst),
		breaker:  breaker,
	}
}

// Fetch waits for a rate limit token and calls the provider through the breaker
func (r *ResilientForecastProvider) Fetch(ctx context.Context, coord forecast.Coordinate) (ports.RawForecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewUpstreamUnavailableError(
			fmt.Sprintf("%s rate limit wait interrupted", r.provider.GetProviderName()), err)
	}

	var cancelled error
	result, err := r.breaker.Execute(func() (interface{}, error) {
		raw, fetchErr := r.provider.Fetch(ctx, coord)
		if fetchErr != nil && ctx.Err() != nil {
			// cancellation by the caller does not count against the provider
			cancelled = fetchErr
			return nil, nil
		}
		return raw, fetchErr
	})
	if cancelled != nil {
		return nil, cancelled
	}
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewUpstreamUnavailableError(
				fmt.Sprintf("%s circuit breaker is open", r.provider.GetProviderName()), err)
		}
		return nil, err
	}

	raw, ok := result.(ports.RawForecast)
	if !ok {
		return nil, errors.NewUpstreamMalformedError(
			fmt.Sprintf("%s returned no payload", r.provider.GetProviderName()), nil)
	}
	return raw, nil
}

// GetProviderName returns the wrapped provider's name
func (r *ResilientForecastProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

// DataSource returns the wrapped provider's data source
func (r *ResilientForecastProvider) DataSource() forecast.DataSource {
	return r.provider.DataSource()
}

// BreakerState reports the circuit breaker state for health checks
func (r *ResilientForecastProvider) BreakerState() string {
	return r.breaker.State().String()
}
