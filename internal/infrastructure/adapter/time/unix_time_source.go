//go:build unix

package time

import (
	"golang.org/x/sys/unix"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// UnixTimeSource reads CLOCK_MONOTONIC and CLOCK_REALTIME with clock_gettime(2)
type UnixTimeSource struct{}

// NewSystemTimeSource returns the clock_gettime backed source
func NewSystemTimeSource() core.TimeSource {
	return NewUnixTimeSource()
}

// NewUnixTimeSource creates a kernel backed time source
func NewUnixTimeSource() core.TimeSource {
	return &UnixTimeSource{}
}

// Now issues one clock_gettime call for the requested clock
func (s *UnixTimeSource) Now(clock core.Clock) (entity.Duration, error) {
	var id int32
	switch clock {
	case core.ClockMonotonic:
		id = unix.CLOCK_MONOTONIC
	case core.ClockRealtime:
		id = unix.CLOCK_REALTIME
	default:
		return entity.Duration{}, errs.NewClockError(clock.String(), errs.ErrUnknownClock)
	}

	var ts unix.Timespec
	if err := unix.ClockGettime(id, &ts); err != nil {
		return entity.Duration{}, errs.NewClockError(clock.String(), err)
	}

	return entity.NewDuration(int64(ts.Sec), int32(ts.Nsec)), nil
}
