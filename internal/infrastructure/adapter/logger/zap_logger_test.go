package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

func newObservedLogger() (core.Logger, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	observedCore, logs := observer.New(level)
	return NewZapLoggerFromCore(observedCore, level), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger()

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"clock": "monotonic"})
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, "monotonic", entry.ContextMap()["clock"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now shown", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Warn("dropped", nil)
	log.Error("kept", nil)
	require.Equal(t, 3, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[2].Level)
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObservedLogger()

	child := log.With(map[string]any{"component": "clock"})
	child.Info("Sleep recorded", map[string]any{"yields": 3})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "clock", fields["component"])
	assert.EqualValues(t, 3, fields["yields"])

	// the child shares its parent's level
	log.SetLevel(core.LogLevelWarn)
	child.Info("dropped", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("debug"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warn"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("info"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("bogus"))
}
