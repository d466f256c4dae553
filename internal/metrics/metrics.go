// Package metrics exposes Prometheus counters for the scorer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes for the webhook counter.
const (
	OutcomeAccepted = "accepted" // verified and scheduled
	OutcomeRejected = "rejected" // signature/header failure
	OutcomeInvalid  = "invalid"  // malformed body shape
)

// Metrics holds the service counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	webhookRequests     *prometheus.CounterVec
	conversationsScored *prometheus.CounterVec
	llmFailures         prometheus.Counter
	frontRateLimited    prometheus.Counter
	pipelineFailures    prometheus.Counter
}

// New creates the metric set.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		webhookRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "axis_webhook_requests_total",
			Help: "Webhook deliveries by outcome (accepted, rejected, invalid).",
		}, []string{"outcome"}),
		conversationsScored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "axis_conversations_scored_total",
			Help: "Conversations successfully scored, by tier.",
		}, []string{"tier"}),
		llmFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "axis_llm_failures_total",
			Help: "Assessments aborted because generation failed.",
		}),
		frontRateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "axis_front_rate_limited_total",
			Help: "429 responses received from the Front API.",
		}),
		pipelineFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "axis_pipeline_failures_total",
			Help: "Background tasks that ended in error.",
		}),
	}
}

// RecordRequest counts one webhook delivery by outcome.
func (m *Metrics) RecordRequest(outcome string) {
	m.webhookRequests.WithLabelValues(outcome).Inc()
}

// RecordScored counts one scored conversation by tier.
func (m *Metrics) RecordScored(tier string) {
	m.conversationsScored.WithLabelValues(tier).Inc()
}

// RecordLLMFailure counts one aborted assessment.
func (m *Metrics) RecordLLMFailure() {
	m.llmFailures.Inc()
}

// RecordRateLimited counts one Front 429.
func (m *Metrics) RecordRateLimited() {
	m.frontRateLimited.Inc()
}

// RecordPipelineFailure counts one failed background task.
func (m *Metrics) RecordPipelineFailure() {
	m.pipelineFailures.Inc()
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
