package usecase

import (
	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// SleepResult reports what a busy-wait sleep observed
type SleepResult struct {
	// Elapsed is the monotonic time measured when the loop exited
	Elapsed entity.Duration
	// Yields counts how many times the loop gave up the processor
	Yields uint64
}

// ClockUseCase queries clocks and performs the cooperative busy-wait sleep
type ClockUseCase interface {
	// Monotonic reads the monotonic clock
	Monotonic() (entity.Duration, error)

	// Realtime reads the wall clock
	Realtime() (entity.Duration, error)

	// Sleep blocks until strictly more than d of monotonic time has passed.
	// Each failed poll yields once; there is no way to cancel a sleep.
	Sleep(d entity.Duration) (SleepResult, error)
}
