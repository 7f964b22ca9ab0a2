//go:build unix

package time

import (
	"testing"
	stdtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

func TestUnixTimeSource_Monotonic(t *testing.T) {
	source := NewUnixTimeSource()

	t1, err := source.Now(core.ClockMonotonic)
	require.NoError(t, err)
	t2, err := source.Now(core.ClockMonotonic)
	require.NoError(t, err)

	assert.False(t, t2.Less(t1), "monotonic clock went backwards: %+v then %+v", t1, t2)
	assert.GreaterOrEqual(t, t1.Nanos, int32(0))
	assert.Less(t, t1.Nanos, entity.NanosPerSec)
}

func TestUnixTimeSource_Realtime(t *testing.T) {
	source := NewUnixTimeSource()

	before := stdtime.Now()
	d, err := source.Now(core.ClockRealtime)
	require.NoError(t, err)
	after := stdtime.Now()

	assert.WithinRange(t, d.Time(), before.Add(-stdtime.Second), after.Add(stdtime.Second))
}

func TestUnixTimeSource_UnknownClock(t *testing.T) {
	source := NewUnixTimeSource()

	_, err := source.Now(core.Clock(99))

	assert.ErrorIs(t, err, errs.ErrUnknownClock)
	assert.ErrorIs(t, err, errs.ErrClockUnavailable)
}

func TestSchedulerYielder(t *testing.T) {
	// Yield must return control to the caller
	NewSchedulerYielder().Yield()
}
