// Package metrics provides Prometheus metrics for the SNAS achievement service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the SNAS service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Scoring Metrics - prioritization throughput and quality
	badgesScored   prometheus.Counter
	scoringLatency prometheus.Histogram
	scoringErrors  prometheus.Counter

	// Content Metrics - generation paths and cache effectiveness
	contentGenerated   prometheus.Counter
	contentCacheHits   prometheus.Counter
	contentCacheMisses prometheus.Counter
	contentLatency     prometheus.Histogram
	aiCalls            prometheus.Counter
	aiFallbacks        prometheus.Counter
	slaViolations      prometheus.Counter

	// Import Metrics - batch loader outcomes
	importRuns        prometheus.Counter
	recordsImported   prometheus.Counter
	recordsFailed     prometheus.Counter
	duplicatesSkipped prometheus.Counter

	// Store Metrics
	totalAchievements prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
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
		namespace:        "snas",
		subsystem:        "achievements",
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

	// Scoring Metrics
	m.badgesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "badges_scored_total",
		Help:      "Total number of badges run through the prioritization engine",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of prioritization call latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of prioritization calls rejected as invalid",
	})

	// Content Metrics
	m.contentGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "content_generated_total",
		Help:      "Total number of content generation calls served",
	})

	m.contentCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "content_cache_hits_total",
		Help:      "Total number of content calls answered from cache",
	})

	m.contentCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "content_cache_misses_total",
		Help:      "Total number of content calls that had to generate",
	})

	m.contentLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "content_latency_milliseconds",
		Help:      "Content generation call latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.aiCalls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ai_calls_total",
		Help:      "Total number of calls dispatched to the AI backend",
	})

	m.aiFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ai_fallbacks_total",
		Help:      "Total number of AI calls degraded to template content",
	})

	m.slaViolations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sla_violations_total",
		Help:      "Total number of calls exceeding the advisory latency target",
	})

	// Import Metrics
	m.importRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_runs_total",
		Help:      "Total number of bulk import runs",
	})

	m.recordsImported = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_imported_total",
		Help:      "Total number of records successfully imported",
	})

	m.recordsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_failed_total",
		Help:      "Total number of records rejected during import validation",
	})

	m.duplicatesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicates_skipped_total",
		Help:      "Total number of duplicate records skipped by the bulk loader",
	})

	// Store Metrics
	m.totalAchievements = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_achievements",
		Help:      "Total number of achievement records in the store",
	})

	// HTTP Performance Metrics
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
}

// Scoring Metrics Functions.

// RecordBadgesScored adds to the scored badge counter.
func RecordBadgesScored(count int) {
	globalManager.badgesScored.Add(float64(count))
}

// RecordScoringLatency records prioritization latency in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordScoringError increments the scoring errors counter.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// Content Metrics Functions.

// RecordContentGenerated increments the content generation counter.
func RecordContentGenerated() {
	globalManager.contentGenerated.Inc()
}

// RecordContentCacheHit increments the content cache hit counter.
func RecordContentCacheHit() {
	globalManager.contentCacheHits.Inc()
}

// RecordContentCacheMiss increments the content cache miss counter.
func RecordContentCacheMiss() {
	globalManager.contentCacheMisses.Inc()
}

// RecordContentLatency records content generation latency in milliseconds.
func RecordContentLatency(latencyMs float64) {
	globalManager.contentLatency.Observe(latencyMs)
}

// RecordAICall increments the AI backend call counter.
func RecordAICall() {
	globalManager.aiCalls.Inc()
}

// RecordAIFallback increments the AI fallback counter.
func RecordAIFallback() {
	globalManager.aiFallbacks.Inc()
}

// RecordSLAViolation increments the SLA violation counter.
func RecordSLAViolation() {
	globalManager.slaViolations.Inc()
}

// Import Metrics Functions.

// RecordImportRun records the outcome of one bulk import run.
func RecordImportRun(imported, failed, duplicates int) {
	globalManager.importRuns.Inc()
	globalManager.recordsImported.Add(float64(imported))
	globalManager.recordsFailed.Add(float64(failed))
	globalManager.duplicatesSkipped.Add(float64(duplicates))
}

// Store Metrics Functions.

// UpdateTotalAchievements sets the stored record count.
func UpdateTotalAchievements(count int) {
	globalManager.totalAchievements.Set(float64(count))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
