package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Optimizations, Observer.prometheus.Iterations)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Increment counts one finished optimization for the given product and outcome.
func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Optimizations.WithLabelValues(labels...).Inc()
}

// ObserveIterations tracks how many iterations the search needed.
func (m *Metrics) ObserveIterations(iterations int) {
	m.prometheus.Iterations.Observe(float64(iterations))
}
