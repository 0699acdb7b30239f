// Package metrics exposes Prometheus instruments for the community service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mutation outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
)

// Metrics holds the collectors registered for one service instance.
type Metrics struct {
	mutations   *prometheus.CounterVec
	aggregation *prometheus.HistogramVec
}

// New registers the collectors on reg. A nil reg uses a private registry,
// which keeps tests and multiple instances from colliding.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cucares_mutations_total",
			Help: "Snapshot mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		aggregation: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cucares_aggregation_duration_seconds",
			Help:    "Time spent computing derived views.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"view"}),
	}
}

// ObserveMutation counts one mutation.
func (m *Metrics) ObserveMutation(operation, outcome string) {
	m.mutations.WithLabelValues(operation, outcome).Inc()
}

// ObserveAggregation records how long view took to compute.
func (m *Metrics) ObserveAggregation(view string, d time.Duration) {
	m.aggregation.WithLabelValues(view).Observe(d.Seconds())
}

// Mutations returns the mutation counter for inspection.
func (m *Metrics) Mutations() *prometheus.CounterVec {
	return m.mutations
}
