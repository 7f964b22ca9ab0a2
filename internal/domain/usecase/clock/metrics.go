package clock

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "timekeeper"
	metricsSubsystem = "clock"
)

type metrics struct {
	Sleeps      prometheus.Counter
	Yields      prometheus.Counter
	ClockErrors *prometheus.CounterVec
	Overshoot   prometheus.Histogram
}

func newMetrics() metrics {
	return metrics{
		Sleeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sleeps_total",
			Help:      "Total busy-wait sleeps completed.",
		}),
		Yields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "yields_total",
			Help:      "Total scheduler yields issued while sleeping.",
		}),
		ClockErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "query_errors_total",
			Help:      "Total failed clock queries, by clock.",
		}, []string{"clock"}),
		Overshoot: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sleep_overshoot_seconds",
			Help:      "Histogram of elapsed minus requested time for completed sleeps.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// Metrics returns the collectors the service updates, for registration by the caller
func (s *Service) Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		s.metrics.Sleeps,
		s.metrics.Yields,
		s.metrics.ClockErrors,
		s.metrics.Overshoot,
	}
}
