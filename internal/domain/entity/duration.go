package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
)

// Sub-second unit sizes expressed in nanoseconds
const (
	NanosPerMicro int32 = 1_000
	NanosPerMilli int32 = 1_000_000
	NanosPerSec   int32 = 1_000_000_000
)

const nanosPerSec = int64(NanosPerSec)

// Duration is a signed span of time held as whole seconds plus a sub-second
// nanosecond remainder. Values are plain copies; every operation returns a
// fresh Duration.
//
// A normalized Duration never mixes a negative Secs with a positive Nanos, and
// never mixes a positive Secs with a negative Nanos. A Duration with Secs == 0
// may carry negative Nanos: NewDuration(-1, 500_000_000) is {0, -500_000_000}.
type Duration struct {
	Secs  int64 `json:"secs"`
	Nanos int32 `json:"nanos"`
}

// NewDuration builds a normalized Duration from any seconds/nanoseconds pair.
//
// Carry: while nanos >= NanosPerSec, or nanos > 0 with secs < 0, one second
// moves from nanos into secs. Borrow: while nanos < 0 with secs > 0, one second
// moves from secs into nanos. Both steps are computed by division rather than
// iteration, so the cost does not depend on how far the input is from
// normal form. Overflow of secs follows Go integer wrapping.
func NewDuration(secs int64, nanos int32) Duration {
	s, n := normalize(secs, int64(nanos))
	return Duration{Secs: s, Nanos: int32(n)}
}

func normalize(secs, nanos int64) (int64, int64) {
	// carry up
	if secs < 0 && nanos > 0 {
		steps := ceilDiv(nanos, nanosPerSec)
		if steps > -secs {
			steps = -secs
		}
		secs += steps
		nanos -= steps * nanosPerSec
	}
	if nanos >= nanosPerSec {
		steps := nanos / nanosPerSec
		secs += steps
		nanos -= steps * nanosPerSec
	}

	// borrow down
	if nanos < 0 && secs > 0 {
		steps := ceilDiv(-nanos, nanosPerSec)
		if steps > secs {
			steps = secs
		}
		secs -= steps
		nanos += steps * nanosPerSec
	}

	return secs, nanos
}

// ceilDiv assumes a > 0 and b > 0.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// AddDurations returns a + b, normalized. A result with Secs == 0 whose
// nanoseconds fall outside the int32 range wraps.
func AddDurations(a, b Duration) Duration {
	s, n := normalize(a.Secs+b.Secs, int64(a.Nanos)+int64(b.Nanos))
	return Duration{Secs: s, Nanos: int32(n)}
}

// SubtractDurations returns a - b, normalized. A result with Secs == 0 whose
// nanoseconds fall outside the int32 range wraps.
func SubtractDurations(a, b Duration) Duration {
	s, n := normalize(a.Secs-b.Secs, int64(a.Nanos)-int64(b.Nanos))
	return Duration{Secs: s, Nanos: int32(n)}
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. The sign is read off the normalized difference a - b,
// seconds first, then nanoseconds. The difference stays in int64 so two
// normal forms with large negative nanos still order correctly.
func Compare(a, b Duration) int {
	secs, nanos := difference(a, b)
	switch {
	case secs > 0:
		return 1
	case secs < 0:
		return -1
	case nanos > 0:
		return 1
	case nanos < 0:
		return -1
	default:
		return 0
	}
}

func difference(a, b Duration) (int64, int64) {
	return normalize(a.Secs-b.Secs, int64(a.Nanos)-int64(b.Nanos))
}

// Add returns d + other
func (d Duration) Add(other Duration) Duration {
	return AddDurations(d, other)
}

// Sub returns d - other
func (d Duration) Sub(other Duration) Duration {
	return SubtractDurations(d, other)
}

// Compare returns the ordering of d relative to other
func (d Duration) Compare(other Duration) int {
	return Compare(d, other)
}

// Equal reports whether d - other normalizes to zero
func (d Duration) Equal(other Duration) bool {
	secs, nanos := difference(d, other)
	return secs == 0 && nanos == 0
}

// Less reports whether d < other
func (d Duration) Less(other Duration) bool {
	return Compare(d, other) < 0
}

// Greater reports whether d > other
func (d Duration) Greater(other Duration) bool {
	return Compare(d, other) > 0
}

// IsZero reports whether both fields are zero
func (d Duration) IsZero() bool {
	return d.Secs == 0 && d.Nanos == 0
}

// String renders the signed whole seconds only. The nanosecond remainder is
// dropped, not rounded.
func (d Duration) String() string {
	return strconv.FormatInt(d.Secs, 10)
}

// Std converts d to a time.Duration. Values beyond roughly 292 years wrap.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}

// FromStd converts a time.Duration into a normalized Duration
func FromStd(d time.Duration) Duration {
	return NewDuration(int64(d/time.Second), int32(d%time.Second))
}

// Time interprets d as an offset from the Unix epoch, which is what a
// realtime clock reading is.
func (d Duration) Time() time.Time {
	return time.Unix(d.Secs, int64(d.Nanos)).UTC()
}

// ParseDuration parses decimal seconds and nanoseconds fields. An empty nanos
// string means zero.
func ParseDuration(secs, nanos string) (Duration, error) {
	secs = strings.TrimSpace(secs)
	nanos = strings.TrimSpace(nanos)

	if secs == "" {
		return Duration{}, fmt.Errorf("%w: empty seconds", errs.ErrInvalidDuration)
	}

	s, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: seconds %q: %s", errs.ErrInvalidDuration, secs, err.Error())
	}

	if nanos == "" {
		return NewDuration(s, 0), nil
	}

	n, err := strconv.ParseInt(nanos, 10, 32)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: nanoseconds %q: %s", errs.ErrInvalidDuration, nanos, err.Error())
	}

	return NewDuration(s, int32(n)), nil
}
