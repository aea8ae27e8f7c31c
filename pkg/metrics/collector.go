// Package metrics exposes per-model call counters, latency histograms, and
// cost accounting over Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agora-labs/agora/pkg/provider"
)

// Collector implements provider.MetricsObserver on top of Prometheus
// primitives. Labels are bounded: model IDs come from configuration and
// outcome is "success" or a failure kind.
type Collector struct {
	registry *prometheus.Registry

	calls     *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	tokensIn  *prometheus.CounterVec
	tokensOut *prometheus.CounterVec
	cost      *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry so tests and
// multiple instances never collide on the global default.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agora_model_calls_total",
				Help: "Model invocations by model and outcome",
			},
			[]string{"model", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agora_model_call_duration_seconds",
				Help:    "Model call latency in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"model"},
		),
		tokensIn: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agora_model_input_tokens_total",
				Help: "Prompt tokens consumed per model",
			},
			[]string{"model"},
		),
		tokensOut: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agora_model_output_tokens_total",
				Help: "Completion tokens produced per model",
			},
			[]string{"model"},
		),
		cost: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agora_model_cost_dollars_total",
				Help: "Estimated spend per model in dollars",
			},
			[]string{"model"},
		),
	}
	c.registry.MustRegister(c.calls, c.latency, c.tokensIn, c.tokensOut, c.cost)
	return c
}

// RecordCall satisfies provider.MetricsObserver.
func (c *Collector) RecordCall(rec provider.CallRecord) {
	outcome := "success"
	if !rec.Success {
		outcome = string(rec.Kind)
	}
	c.calls.WithLabelValues(rec.Model, outcome).Inc()
	c.latency.WithLabelValues(rec.Model).Observe(rec.Latency.Seconds())
	if rec.Success {
		c.tokensIn.WithLabelValues(rec.Model).Add(float64(rec.InputTokens))
		c.tokensOut.WithLabelValues(rec.Model).Add(float64(rec.OutputTokens))
		c.cost.WithLabelValues(rec.Model).Add(rec.Cost)
	}
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
