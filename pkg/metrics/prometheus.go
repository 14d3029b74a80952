// Package metrics provides Prometheus metrics for the PerfDeck analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the PerfDeck service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core Business Metrics - the analytics pipeline
	analyticsRequests  *prometheus.CounterVec
	analyticsDuration  prometheus.Histogram
	rowsNormalized     prometheus.Counter
	coercionFallbacks  prometheus.Counter
	rowsDropped        prometheus.Counter
	availabilityErrors prometheus.Counter
	validationFailures prometheus.Counter

	// Operational Health Metrics
	storeRows prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "perfdeck",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.analyticsRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of analytics requests by analysis type and timeframe",
		},
		[]string{"analysis_type", "timeframe"},
	)

	m.analyticsDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_milliseconds",
		Help:      "Histogram of end-to-end analytics pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rowsNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_normalized_total",
		Help:      "Total number of raw measurement rows normalized into points",
	})

	m.coercionFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "value_coercion_fallbacks_total",
		Help:      "Total number of unparseable values coerced to zero (data quality indicator)",
	})

	m.rowsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Total number of raw rows dropped during normalization (bad date or metric)",
	})

	m.availabilityErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "availability_degradations_total",
		Help:      "Total number of responses served with degraded metric availability counts",
	})

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Total number of analytics requests rejected by validation",
	})

	m.storeRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_rows",
		Help:      "Current number of measurement rows held by the in-memory store",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers delegating to the global manager.

// RecordAnalyticsRequest increments the request counter for one analysis.
func RecordAnalyticsRequest(analysisType, timeframe string) {
	if globalManager.enabled {
		globalManager.analyticsRequests.WithLabelValues(analysisType, timeframe).Inc()
	}
}

// RecordAnalyticsDuration observes one end-to-end pipeline duration.
func RecordAnalyticsDuration(durationMs float64) {
	if globalManager.enabled {
		globalManager.analyticsDuration.Observe(durationMs)
	}
}

// RecordRowsNormalized adds to the normalized-row counter.
func RecordRowsNormalized(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.rowsNormalized.Add(float64(n))
	}
}

// RecordCoercionFallbacks adds to the coerce-or-zero counter.
func RecordCoercionFallbacks(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.coercionFallbacks.Add(float64(n))
	}
}

// RecordRowsDropped adds to the dropped-row counter.
func RecordRowsDropped(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.rowsDropped.Add(float64(n))
	}
}

// RecordAvailabilityDegraded increments the degraded-availability counter.
func RecordAvailabilityDegraded() {
	if globalManager.enabled {
		globalManager.availabilityErrors.Inc()
	}
}

// RecordValidationFailure increments the validation-failure counter.
func RecordValidationFailure() {
	if globalManager.enabled {
		globalManager.validationFailures.Inc()
	}
}

// UpdateStoreRows sets the in-memory store row gauge.
func UpdateStoreRows(n int) {
	if globalManager.enabled {
		globalManager.storeRows.Set(float64(n))
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordErrorByEndpoint increments the HTTP error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
	}
}
