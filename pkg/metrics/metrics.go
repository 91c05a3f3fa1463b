// Package metrics exposes prometheus instrumentation for the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TurnsTotal counts completed turns by outcome
	// (completed, provider_error, max_iterations, invalid_input).
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_turns_total",
		Help: "Completed conversation turns by outcome",
	}, []string{"outcome"})

	// ProviderCalls counts chat-completion calls to the LLM provider.
	ProviderCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assistant_provider_calls_total",
		Help: "Chat-completion calls made to the LLM provider",
	})

	// ProviderCallDuration observes provider call latency.
	ProviderCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assistant_provider_call_duration_seconds",
		Help:    "LLM provider call latency",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	// ToolCalls counts dispatched tool calls by tool and status (ok, error).
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_tool_calls_total",
		Help: "Dispatched tool calls by tool and status",
	}, []string{"tool", "status"})

	// RequestCount counts HTTP requests by method, path, and status.
	RequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_http_requests_total",
		Help: "HTTP requests by method, path, and status",
	}, []string{"method", "path", "status"})

	// RequestDuration observes HTTP request latency by method and path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistant_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
