// Package metrics exposes Prometheus counters and histograms for the
// optimizer's rule executor, trimmed from the teacher's cluster-wide
// MetricsCollector down to what a single in-process rewrite pass can
// observe: rules firing, batch iteration counts, and convergence failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all optiq metrics.
const Namespace = "optiq"

// Collector implements optimizer.MetricsSink. It is kept in its own package
// so embedders that never wire metrics don't pull in the Prometheus client.
type Collector struct {
	RulesApplied        *prometheus.CounterVec
	BatchIterations     *prometheus.HistogramVec
	ConvergenceExceeded *prometheus.CounterVec
}

// NewCollector creates a Collector for component (e.g. "optiqctl" or the
// name of an embedding service), registering its series with the default
// registry via promauto.
func NewCollector(component string) *Collector {
	return &Collector{
		RulesApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: component,
				Name:      "rules_applied_total",
				Help:      "Total number of times a rule changed a plan",
			},
			[]string{"batch", "rule"},
		),
		BatchIterations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: component,
				Name:      "batch_iterations",
				Help:      "Number of sweeps a batch took per Execute call",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
			},
			[]string{"batch"},
		),
		ConvergenceExceeded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: component,
				Name:      "convergence_exceeded_total",
				Help:      "Total number of batches that hit their iteration cap without reaching a fixed point",
			},
			[]string{"batch"},
		),
	}
}

// ObserveRuleApplied implements optimizer.MetricsSink.
func (c *Collector) ObserveRuleApplied(batch, rule string) {
	c.RulesApplied.WithLabelValues(batch, rule).Inc()
}

// ObserveBatchIteration implements optimizer.MetricsSink. iterations is the
// number of sweeps the batch took; the executor reports it once, when the
// batch finishes.
func (c *Collector) ObserveBatchIteration(batch string, iterations int) {
	c.BatchIterations.WithLabelValues(batch).Observe(float64(iterations))
}

// ObserveConvergenceExceeded implements optimizer.MetricsSink.
func (c *Collector) ObserveConvergenceExceeded(batch string) {
	c.ConvergenceExceeded.WithLabelValues(batch).Inc()
}
