// Package metrics exposes fee engine activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"deliveryfee/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "deliveryfee"

// PrometheusFeeMetrics implements ports.FeeMetrics.
type PrometheusFeeMetrics struct {
	gatherer prometheus.Gatherer

	// Computations counts CalculateFees calls.
	// Labels: mode, outcome
	Computations *prometheus.CounterVec

	// ComputationDuration tracks engine latency.
	// Labels: mode
	ComputationDuration *prometheus.HistogramVec

	// RefreshedOrders counts orders visited by the refresh job.
	// Labels: result
	RefreshedOrders *prometheus.CounterVec
}

// NewPrometheusFeeMetrics registers the fee collectors on a dedicated registry
// together with the Go runtime and process collectors.
func NewPrometheusFeeMetrics() *PrometheusFeeMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &PrometheusFeeMetrics{
		gatherer: registry,

		Computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computations_total",
				Help:      "Total number of delivery fee computations by outcome",
			},
			[]string{"mode", "outcome"},
		),

		ComputationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "computation_duration_seconds",
				Help:      "Time taken to compute the delivery fee of one order",
				Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
			},
			[]string{"mode"},
		),

		RefreshedOrders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refreshed_orders_total",
				Help:      "Total number of stored orders visited by the fee refresh job",
			},
			[]string{"result"},
		),
	}
}

// ObserveComputation records one CalculateFees call.
func (m *PrometheusFeeMetrics) ObserveComputation(mode order.DeliveryMode, outcome string, elapsed time.Duration) {
	m.Computations.WithLabelValues(mode.String(), outcome).Inc()
	m.ComputationDuration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
}

// ObserveRefresh records the fate of one order visited by the refresh job.
func (m *PrometheusFeeMetrics) ObserveRefresh(result string) {
	m.RefreshedOrders.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusFeeMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
