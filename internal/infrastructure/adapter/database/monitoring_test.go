package database

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timekeeper/mocks/port/core"
)

func TestQueryMetrics(t *testing.T) {
	t.Run("should count failures per operation", func(t *testing.T) {
		m := NewQueryMetrics(new(core.MockLogger), 0)

		assert.NoError(t, m.MeasureQuery("create", func() error { return nil }))
		assert.Error(t, m.MeasureQuery("create", func() error { return errors.New("boom") }))

		assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("create")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
		assert.Len(t, m.Collectors(), 2)
	})

	t.Run("should warn about slow queries", func(t *testing.T) {
		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Slow database query detected", mock.Anything).Return().Once()
		m := NewQueryMetrics(mockLogger, time.Microsecond)

		_ = m.MeasureQuery("list", func() error {
			time.Sleep(time.Millisecond)
			return nil
		})

		mockLogger.AssertExpectations(t)
	})

	t.Run("nil metrics still run the query", func(t *testing.T) {
		var m *QueryMetrics
		called := false

		assert.NoError(t, m.MeasureQuery("list", func() error { called = true; return nil }))
		assert.True(t, called)
	})
}
