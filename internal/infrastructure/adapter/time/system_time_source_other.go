//go:build !unix

package time

import "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"

// NewSystemTimeSource returns the runtime backed source on platforms without clock_gettime
func NewSystemTimeSource() core.TimeSource {
	return NewRuntimeTimeSource()
}
