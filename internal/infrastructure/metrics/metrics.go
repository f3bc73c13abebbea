package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Order-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Pipeline runs by terminal outcome
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "pipeline_runs_total",
			Help:      "Interaction pipeline runs by outcome",
		},
		[]string{"source_type", "outcome"},
	)

	// Pipeline duration
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "pipeline_duration_seconds",
			Help:      "End-to-end interaction pipeline duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"source_type"},
	)

	// Anomalies recorded, by rule
	AnomaliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "anomalies_total",
			Help:      "Anomalies recorded against orders, by rule code",
		},
		[]string{"rule_code"},
	)

	// Safety verdicts
	SafetyVerdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "safety_verdicts_total",
			Help:      "Content safety verdicts by decision",
		},
		[]string{"decision"},
	)

	// Expired quotes observed by the background monitor
	ExpiredQuotes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "expired_quotes",
			Help:      "Quotes past their validity window as of the last monitor sweep",
		},
	)

	// Provider errors
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordervoice",
			Subsystem: "order_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordPipelineRun records one pipeline run with its terminal outcome
func RecordPipelineRun(sourceType, outcome string, durationSec float64) {
	PipelineRunsTotal.WithLabelValues(sourceType, outcome).Inc()
	PipelineDuration.WithLabelValues(sourceType).Observe(durationSec)
}

// RecordAnomaly records one anomaly finding
func RecordAnomaly(ruleCode string) {
	AnomaliesTotal.WithLabelValues(ruleCode).Inc()
}

// RecordSafetyVerdict records a content safety decision
func RecordSafetyVerdict(decision string) {
	SafetyVerdictsTotal.WithLabelValues(decision).Inc()
}

// RecordProviderError records a provider error
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// SetExpiredQuotes records the expired-quote count from a monitor sweep
func SetExpiredQuotes(count int64) {
	ExpiredQuotes.Set(float64(count))
}
