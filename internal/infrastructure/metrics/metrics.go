// Package metrics exposes Prometheus collectors for the bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts HTTP requests handled by the web adapter.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searxng",
			Subsystem: "bridge",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// ToolCallsTotal counts tool executions by name and outcome.
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searxng",
			Subsystem: "bridge",
			Name:      "tool_calls_total",
			Help:      "Total number of search tool executions.",
		},
		[]string{"tool", "status"},
	)

	// ToolDuration observes end-to-end tool execution time.
	ToolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searxng",
			Subsystem: "bridge",
			Name:      "tool_duration_seconds",
			Help:      "Duration of search tool executions in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	// BackendLatency observes round-trip time of backend search requests.
	BackendLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "searxng",
			Subsystem: "bridge",
			Name:      "backend_latency_seconds",
			Help:      "Latency of outbound SearXNG requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		ToolCallsTotal,
		ToolDuration,
		BackendLatency,
	)
}

// RecordRequest records one handled HTTP request.
func RecordRequest(method, path, status string) {
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordToolCall records one tool execution with its duration.
func RecordToolCall(tool, status string, seconds float64) {
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
	ToolDuration.WithLabelValues(tool).Observe(seconds)
}

// RecordBackendLatency records one backend round trip.
func RecordBackendLatency(seconds float64) {
	BackendLatency.Observe(seconds)
}
