package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_ai_requests_total",
			Help: "Calls made to the AI provider",
		},
		[]string{"operation", "outcome"},
	)

	aiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_ai_request_duration_seconds",
			Help:    "AI provider call latency in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"operation"},
	)

	aiTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_ai_tokens_total",
			Help: "Tokens consumed by AI provider calls",
		},
		[]string{"operation", "direction"},
	)

	aiMalformedReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_ai_malformed_replies_total",
			Help: "AI replies that did not match the requested shape",
		},
		[]string{"operation"},
	)
)

// recordAICall records one provider call
func recordAICall(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	aiCallsTotal.WithLabelValues(operation, outcome).Inc()
	aiCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func recordTokens(operation string, input, output int) {
	aiTokensTotal.WithLabelValues(operation, "input").Add(float64(input))
	aiTokensTotal.WithLabelValues(operation, "output").Add(float64(output))
}

func recordMalformedReply(operation string) {
	aiMalformedReplies.WithLabelValues(operation).Inc()
}
