package time

import (
	"runtime"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// SchedulerYielder gives up the processor through the Go scheduler
type SchedulerYielder struct{}

// NewSchedulerYielder creates a yielder backed by runtime.Gosched
func NewSchedulerYielder() core.Yielder {
	return &SchedulerYielder{}
}

// Yield lets other goroutines run; the caller resumes when the scheduler picks it again
func (y *SchedulerYielder) Yield() {
	runtime.Gosched()
}
