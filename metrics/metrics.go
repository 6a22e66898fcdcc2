// Package metrics exposes Prometheus instrumentation for the agent core:
// chat request counts, model gateway latency, and tool execution outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors used by the dispatch loop and HTTP surface.
type Metrics struct {
	// ChatRequests counts inbound chat requests by outcome.
	// Labels: status (ok|model_error|empty_response|round_limit)
	ChatRequests *prometheus.CounterVec

	// ModelCallDuration measures gateway call latency in seconds.
	// Labels: provider
	ModelCallDuration *prometheus.HistogramVec

	// ToolExecutions counts tool invocations by tool name and status.
	// Labels: tool, status (success|error|unknown)
	ToolExecutions *prometheus.CounterVec

	// ToolRounds observes how many tool rounds a request needed.
	ToolRounds prometheus.Histogram
}

// New creates and registers all collectors on the given registerer. Passing
// nil registers on the Prometheus default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ChatRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_chat_requests_total",
				Help: "Total number of chat requests by outcome",
			},
			[]string{"status"},
		),
		ModelCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_model_call_duration_seconds",
				Help:    "Duration of model gateway calls in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		),
		ToolExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_tool_executions_total",
				Help: "Total number of tool executions by tool name and status",
			},
			[]string{"tool", "status"},
		),
		ToolRounds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wayfarer_tool_rounds_per_request",
				Help:    "Number of tool rounds executed per chat request",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
			},
		),
	}
}
