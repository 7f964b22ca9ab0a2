package time

import (
	stdtime "time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// RuntimeTimeSource reads clocks through the Go runtime. Monotonic readings
// count from the moment the source was created.
type RuntimeTimeSource struct {
	base stdtime.Time
}

// NewRuntimeTimeSource creates a time source for platforms without clock_gettime
func NewRuntimeTimeSource() core.TimeSource {
	return &RuntimeTimeSource{base: stdtime.Now()}
}

// Now returns the elapsed monotonic span or the wall clock as seconds and nanoseconds
func (s *RuntimeTimeSource) Now(clock core.Clock) (entity.Duration, error) {
	switch clock {
	case core.ClockMonotonic:
		return entity.FromStd(stdtime.Since(s.base)), nil
	case core.ClockRealtime:
		now := stdtime.Now()
		return entity.NewDuration(now.Unix(), int32(now.Nanosecond())), nil
	default:
		return entity.Duration{}, errs.NewClockError(clock.String(), errs.ErrUnknownClock)
	}
}
