package infrastructure

import (
	"net/http"
	"time"

	"forecastsync.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "forecastsync"

// PrometheusMetricsCollector implements the MetricsCollector port on its own registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	syncRuns      *prometheus.CounterVec
	syncDuration  *prometheus.HistogramVec
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	evictedRows   *prometheus.CounterVec
	cacheRequests *prometheus.CounterVec
}

// NewPrometheusMetricsCollector creates a collector with a fresh registry
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		syncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "sync_runs_total",
				Help:      "The total number of sync runs by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		syncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "sync_run_duration_seconds",
				Help:      "Sync run duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_fetches_total",
				Help:      "The total number of provider fetches by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "provider_fetch_duration_seconds",
				Help:      "Provider fetch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		evictedRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "evicted_rows_total",
				Help:      "The total number of rows removed by retention",
			},
			[]string{"kind"},
		),
		cacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "projection_cache_requests_total",
				Help:      "The total number of projection cache lookups by result",
			},
			[]string{"cache_type", "result"},
		),
	}
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)

// RecordSyncRun records a finished sync run
func (m *PrometheusMetricsCollector) RecordSyncRun(source string, outcome string, duration time.Duration) {
	m.syncRuns.WithLabelValues(source, outcome).Inc()
	m.syncDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordProviderFetch records one upstream fetch
func (m *PrometheusMetricsCollector) RecordProviderFetch(provider string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.fetches.WithLabelValues(provider, outcome).Inc()
	m.fetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordEviction records rows removed by one eviction pass
func (m *PrometheusMetricsCollector) RecordEviction(result ports.EvictionResult) {
	m.evictedRows.WithLabelValues("hourly").Add(float64(result.Hourly))
	m.evictedRows.WithLabelValues("daily").Add(float64(result.Daily))
	m.evictedRows.WithLabelValues("locations").Add(float64(result.Locations))
}

// RecordCacheHit records a projection cache hit
func (m *PrometheusMetricsCollector) RecordCacheHit(cacheType string) {
	m.cacheRequests.WithLabelValues(cacheType, "hit").Inc()
}

// RecordCacheMiss records a projection cache miss
func (m *PrometheusMetricsCollector) RecordCacheMiss(cacheType string) {
	m.cacheRequests.WithLabelValues(cacheType, "miss").Inc()
}

// Registry returns the registry the collector writes to
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
