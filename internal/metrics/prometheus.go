package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Optimizations *prometheus.CounterVec
	Iterations    prometheus.Histogram
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Optimizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pricelab",
				Name:      "optimizations",
			}, []string{"product", "outcome"}),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "pricelab",
				Name:      "iterations",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			}),
	}
}
