package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSlowQueryThreshold is the latency above which a query is logged as slow
const DefaultSlowQueryThreshold = 100 * time.Millisecond

// QueryMetrics records query latency and failures per operation
type QueryMetrics struct {
	logger        coreport.Logger
	slowThreshold time.Duration

	Duration *prometheus.HistogramVec
	Failures *prometheus.CounterVec
}

// NewQueryMetrics creates the query collectors. Register them via Collectors.
func NewQueryMetrics(logger coreport.Logger, slowThreshold time.Duration) *QueryMetrics {
	return &QueryMetrics{
		logger:        logger,
		slowThreshold: slowThreshold,
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timekeeper",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "timekeeper",
			Subsystem: "db",
			Name:      "query_failures_total",
			Help:      "Failed database queries by operation.",
		}, []string{"operation"}),
	}
}

// Collectors returns the collectors to register with a prometheus registry
func (c *QueryMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{c.Duration, c.Failures}
}

// MeasureQuery runs fn and records its latency under operation.
// A nil receiver runs fn without measuring.
func (c *QueryMetrics) MeasureQuery(operation string, fn func() error) error {
	if c == nil {
		return fn()
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	c.Duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		c.Failures.WithLabelValues(operation).Inc()
	}

	if c.slowThreshold > 0 && elapsed > c.slowThreshold {
		c.logger.Warn("Slow database query detected", map[string]any{
			"operation":   operation,
			"duration_ms": elapsed.Milliseconds(),
			"failed":      err != nil,
		})
	}

	return err
}
