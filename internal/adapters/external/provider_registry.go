package external

import (
	"fmt"
	"strings"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// defaultProviderOrder is the composite precedence used when none is configured
var defaultProviderOrder = []string{
	forecast.DataSourceOpenWeatherMap.String(),
	forecast.DataSourceWeatherAPI.String(),
	forecast.DataSourceOpenMeteo.String(),
}

// ProviderRegistry implements SourceSelector over a fixed set of provider adapters
type ProviderRegistry struct {
	providers map[string]ports.ForecastProvider
	order     []string
	logger    ports.Logger
}

// ProviderRegistryConfig holds configuration for creating the provider registry
type ProviderRegistryConfig struct {
	OpenWeatherMapKey string
	OpenWeatherMapURL string
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenMeteoURL      string
	OpenMeteoEnabled  bool
	ProviderOrder     []string
	ForecastDays      int
	FetchTimeout      time.Duration
	Resilience        ResilienceConfig
	// RequestLogger receives per-request logs when set
	RequestLogger ports.Logger
	Logger        ports.Logger
}

var _ ports.SourceSelector = (*ProviderRegistry)(nil)

// NewProviderRegistry creates adapters for every configured provider, each guarded by
// the resilience decorator and optionally the request logging decorator
func NewProviderRegistry(config ProviderRegistryConfig) *ProviderRegistry {
	registry := &ProviderRegistry{logger: config.Logger}
	providers := registry.createProviderMap(config)
	for name, provider := range providers {
		var wrapped ports.ForecastProvider = NewResilientForecastProvider(provider, config.Resilience)
		if config.RequestLogger != nil {
			wrapped = NewForecastProviderLoggingDecorator(wrapped, config.RequestLogger)
		}
		providers[name] = wrapped
	}
	registry.providers = providers
	registry.order = resolveOrder(config.ProviderOrder, providers)
	return registry
}

// NewProviderRegistryFromProviders builds a registry over already constructed providers
func NewProviderRegistryFromProviders(logger ports.Logger, order []string, providers ...ports.ForecastProvider) *ProviderRegistry {
	byName := make(map[string]ports.ForecastProvider, len(providers))
	for _, p := range providers {
		byName[p.GetProviderName()] = p
	}
	return &ProviderRegistry{
		providers: byName,
		order:     resolveOrder(order, byName),
		logger:    logger,
	}
}

func (r *ProviderRegistry) createProviderMap(config ProviderRegistryConfig) map[string]ports.ForecastProvider {
	providers := make(map[string]ports.ForecastProvider)
	client := newHTTPClient(config.FetchTimeout)

	if config.OpenWeatherMapKey != "" {
		providers[forecast.DataSourceOpenWeatherMap.String()] = NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  config.OpenWeatherMapKey,
			BaseURL: config.OpenWeatherMapURL,
			Client:  client,
			Logger:  r.logger,
		})
		r.debug("Created OpenWeatherMap provider", forecast.DataSourceOpenWeatherMap)
	}

	if config.WeatherAPIKey != "" {
		providers[forecast.DataSourceWeatherAPI.String()] = NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
			APIKey:  config.WeatherAPIKey,
			BaseURL: config.WeatherAPIBaseURL,
			Days:    config.ForecastDays,
			Client:  client,
			Logger:  r.logger,
		})
		r.debug("Created WeatherAPI provider", forecast.DataSourceWeatherAPI)
	}

	if config.OpenMeteoEnabled {
		providers[forecast.DataSourceOpenMeteo.String()] = NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
			BaseURL: config.OpenMeteoURL,
			Days:    config.ForecastDays,
			Client:  client,
			Logger:  r.logger,
		})
		r.debug("Created Open-Meteo provider", forecast.DataSourceOpenMeteo)
	}

	return providers
}

func (r *ProviderRegistry) debug(msg string, source forecast.DataSource) {
	if r.logger != nil {
		r.logger.Debug(msg, ports.F("provider", source.String()))
	}
}

// resolveOrder keeps registered names from order, then appends the remaining
// registered providers in default order
func resolveOrder(order []string, providers map[string]ports.ForecastProvider) []string {
	resolved := make([]string, 0, len(providers))
	seen := make(map[string]bool, len(providers))
	for _, list := range [][]string{order, defaultProviderOrder} {
		for _, name := range list {
			name = strings.ToLower(strings.TrimSpace(name))
			if _, ok := providers[name]; ok && !seen[name] {
				seen[name] = true
				resolved = append(resolved, name)
			}
		}
	}
	return resolved
}

// Select returns the adapters for the configured source. A single source yields exactly
// that adapter; the composite source yields every registered adapter in precedence order.
func (r *ProviderRegistry) Select(cfg ports.SelectionConfig) ([]ports.ForecastProvider, error) {
	source, ok := forecast.DataSourceFromString(cfg.Source)
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown forecast source %q", cfg.Source))
	}

	if source != forecast.DataSourceComposite {
		provider, exists := r.providers[source.String()]
		if !exists {
			return nil, errors.NewValidationError(fmt.Sprintf("forecast source %q is not configured", source))
		}
		return []ports.ForecastProvider{provider}, nil
	}

	order := r.order
	if len(cfg.Order) > 0 {
		order = resolveOrder(cfg.Order, r.providers)
	}
	selected := make([]ports.ForecastProvider, 0, len(order))
	for _, name := range order {
		selected = append(selected, r.providers[name])
	}
	if len(selected) == 0 {
		return nil, errors.NewValidationError("no forecast providers are configured for the composite source")
	}
	return selected, nil
}

// Providers returns every registered adapter in precedence order
func (r *ProviderRegistry) Providers() []ports.ForecastProvider {
	providers := make([]ports.ForecastProvider, 0, len(r.order))
	for _, name := range r.order {
		providers = append(providers, r.providers[name])
	}
	return providers
}

// GetProviderInfo returns information about configured providers
func (r *ProviderRegistry) GetProviderInfo() map[string]interface{} {
	breakers := make(map[string]string)
	for name, p := range r.providers {
		if s, ok := unwrapBreakerState(p); ok {
			breakers[name] = s
		}
	}

	return map[string]interface{}{
		"total_providers":   len(r.order),
		"provider_order":    append([]string(nil), r.order...),
		"composite_enabled": len(r.order) > 1,
		"breaker_states":    breakers,
	}
}

func unwrapBreakerState(p ports.ForecastProvider) (string, bool) {
	for {
		switch v := p.(type) {
		case *ResilientForecastProvider:
			return v.BreakerState(), true
		case *ForecastProviderLoggingDecorator:
			p = v.provider
		default:
			return "", false
		}
	}
}
