package core

import (
	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// Clock selects which kernel clock a TimeSource reads
type Clock int

const (
	// ClockMonotonic never decreases within the life of a process
	ClockMonotonic Clock = iota
	// ClockRealtime is wall-clock time and may jump when the clock is adjusted
	ClockRealtime
)

// String returns the clock name used in logs and errors
func (c Clock) String() string {
	switch c {
	case ClockMonotonic:
		return "monotonic"
	case ClockRealtime:
		return "realtime"
	default:
		return "unknown"
	}
}

// TimeSource reads the current value of a clock
type TimeSource interface {
	// Now returns the clock's current reading as seconds and nanoseconds
	Now(clock Clock) (entity.Duration, error)
}

// Yielder hands the rest of the current scheduling quantum back to the scheduler
type Yielder interface {
	// Yield returns at the scheduler's discretion with no minimum delay
	Yield()
}
