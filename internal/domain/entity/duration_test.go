package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iterativeNew is the step-by-step carry/borrow rule that NewDuration computes
// by division.
func iterativeNew(secs int64, nanos int32) Duration {
	for nanos >= NanosPerSec || (nanos > 0 && secs < 0) {
		secs++
		nanos -= NanosPerSec
	}
	for nanos < 0 && secs > 0 {
		secs--
		nanos += NanosPerSec
	}
	return Duration{Secs: secs, Nanos: nanos}
}

// totalNanos is exact for the small sample values used in these tests
func totalNanos(d Duration) int64 {
	return d.Secs*nanosPerSec + int64(d.Nanos)
}

var sampleSecs = []int64{math.MinInt64 / 2, -1_000_000, -3, -2, -1, 0, 1, 2, 3, 1_000_000, math.MaxInt64 / 2}

var sampleNanos = []int32{
	math.MinInt32, -2_000_000_001, -1_999_999_999, -1_000_000_000, -999_999_999, -500_000_000, -1,
	0, 1, 500_000_000, 999_999_999, 1_000_000_000, 1_000_000_001, 1_999_999_999, math.MaxInt32,
}

func TestNewDuration(t *testing.T) {
	t.Run("Carry examples", func(t *testing.T) {
		testCases := []struct {
			name          string
			secs          int64
			nanos         int32
			expectedSecs  int64
			expectedNanos int32
		}{
			{"overflowing nanos carry into secs", 0, 1_000_000_001, 1, 1},
			{"negative nanos borrow from secs", 1, -1, 0, 999_999_999},
			{"negative secs absorb positive nanos", -1, 500_000_000, 0, -500_000_000},
			{"already normal", 5, 250, 5, 250},
			{"zero", 0, 0, 0, 0},
			{"small negative stays in nanos", 0, -1, 0, -1},
			{"negative both", -3, -400, -3, -400},
			{"two seconds of nanos", 0, 2_000_000_000, 2, 0},
			{"negative secs with large positive nanos", -1, 1_500_000_000, 0, 500_000_000},
			{"borrow stops at zero secs", 1, -1_500_000_000, 0, -500_000_000},
			{"negative secs partial carry", -2, 500_000_000, -1, -500_000_000},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d := NewDuration(tc.secs, tc.nanos)
				assert.Equal(t, tc.expectedSecs, d.Secs)
				assert.Equal(t, tc.expectedNanos, d.Nanos)
			})
		}
	})

	t.Run("Matches iterative carry rule", func(t *testing.T) {
		for _, s := range []int64{-5, -2, -1, 0, 1, 2, 5} {
			for _, n := range sampleNanos {
				assert.Equal(t, iterativeNew(s, n), NewDuration(s, n), "NewDuration(%d, %d)", s, n)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, s := range sampleSecs {
			for _, n := range sampleNanos {
				once := NewDuration(s, n)
				twice := NewDuration(once.Secs, once.Nanos)
				assert.Equal(t, once, twice, "NewDuration(%d, %d)", s, n)
			}
		}
	})

	t.Run("Sign consistent", func(t *testing.T) {
		for _, s := range sampleSecs {
			for _, n := range sampleNanos {
				d := NewDuration(s, n)
				assert.Less(t, d.Nanos, NanosPerSec)
				assert.False(t, d.Secs < 0 && d.Nanos > 0, "NewDuration(%d, %d) = %+v", s, n, d)
				assert.False(t, d.Secs > 0 && d.Nanos < 0, "NewDuration(%d, %d) = %+v", s, n, d)
			}
		}
	})
}

func TestDurationArithmetic(t *testing.T) {
	t.Run("Additive identity", func(t *testing.T) {
		zero := NewDuration(0, 0)
		for _, s := range sampleSecs {
			for _, n := range sampleNanos {
				d := NewDuration(s, n)
				assert.True(t, d.Add(zero).Equal(d))
				assert.Equal(t, d, AddDurations(d, zero))
			}
		}
	})

	t.Run("Self subtraction is zero", func(t *testing.T) {
		for _, s := range sampleSecs {
			for _, n := range sampleNanos {
				d := NewDuration(s, n)
				dif := d.Sub(d)
				assert.Equal(t, int64(0), dif.Secs)
				assert.Equal(t, int32(0), dif.Nanos)
			}
		}
	})

	t.Run("Add carries", func(t *testing.T) {
		sum := AddDurations(NewDuration(1, 600_000_000), NewDuration(2, 700_000_000))
		assert.Equal(t, Duration{Secs: 4, Nanos: 300_000_000}, sum)
	})

	t.Run("Sub borrows", func(t *testing.T) {
		dif := SubtractDurations(NewDuration(3, 100_000_000), NewDuration(1, 200_000_000))
		assert.Equal(t, Duration{Secs: 1, Nanos: 900_000_000}, dif)
	})

	t.Run("Sub to a small negative", func(t *testing.T) {
		dif := NewDuration(1, 0).Sub(NewDuration(1, 250))
		assert.Equal(t, Duration{Secs: 0, Nanos: -250}, dif)
	})

	t.Run("Sub to a large negative", func(t *testing.T) {
		dif := NewDuration(1, 0).Sub(NewDuration(3, 500_000_000))
		assert.Equal(t, Duration{Secs: -2, Nanos: -500_000_000}, dif)
	})
}

func TestDurationOrdering(t *testing.T) {
	values := make([]Duration, 0, len(sampleNanos)*7)
	for _, s := range []int64{-3, -1, 0, 1, 3, 1_000_000, -1_000_000} {
		for _, n := range sampleNanos {
			values = append(values, NewDuration(s, n))
		}
	}

	t.Run("Exactly one relation holds", func(t *testing.T) {
		for _, a := range values {
			for _, b := range values {
				less, equal, greater := a.Less(b), a.Equal(b), a.Greater(b)
				count := 0
				for _, held := range []bool{less, equal, greater} {
					if held {
						count++
					}
				}
				assert.Equal(t, 1, count, "a=%+v b=%+v", a, b)
			}
		}
	})

	t.Run("Agrees with sign of exact difference", func(t *testing.T) {
		for _, a := range values {
			for _, b := range values {
				dif := totalNanos(a) - totalNanos(b)
				want := 0
				switch {
				case dif > 0:
					want = 1
				case dif < 0:
					want = -1
				}
				assert.Equal(t, want, Compare(a, b), "a=%+v b=%+v", a, b)
				assert.Equal(t, -want, b.Compare(a), "a=%+v b=%+v", a, b)
				assert.Equal(t, want == 0, a.Equal(b), "a=%+v b=%+v", a, b)
			}
		}
	})

	t.Run("Negative nanos beyond one second", func(t *testing.T) {
		zero := NewDuration(0, 0)
		a := NewDuration(0, -1_500_000_000)
		b := NewDuration(0, 999_999_999)

		require.Equal(t, Duration{Secs: 0, Nanos: -1_500_000_000}, a)
		assert.True(t, a.Less(zero))
		assert.True(t, zero.Less(b))
		assert.True(t, a.Less(b))
		assert.Equal(t, -1, Compare(a, b))
		assert.Equal(t, 1, Compare(b, a))
		assert.False(t, a.Equal(b))
		assert.True(t, NewDuration(0, math.MinInt32).Less(NewDuration(0, math.MaxInt32)))
	})

	t.Run("Transitive at zero seconds", func(t *testing.T) {
		zeroSecs := make([]Duration, 0, len(sampleNanos))
		for _, n := range sampleNanos {
			zeroSecs = append(zeroSecs, NewDuration(0, n))
		}

		for _, a := range zeroSecs {
			for _, b := range zeroSecs {
				for _, c := range zeroSecs {
					if a.Less(b) && b.Less(c) {
						assert.True(t, a.Less(c), "a=%+v b=%+v c=%+v", a, b, c)
					}
				}
			}
		}
	})

	t.Run("Agrees with nanosecond totals", func(t *testing.T) {
		small := []Duration{
			NewDuration(-2, -1), NewDuration(-1, 0), NewDuration(0, -500_000_000),
			NewDuration(0, 0), NewDuration(0, 1), NewDuration(1, 0), NewDuration(1, 1),
		}
		for i := 1; i < len(small); i++ {
			assert.True(t, small[i-1].Less(small[i]), "%+v < %+v", small[i-1], small[i])
			assert.Equal(t, small[i-1].Std() < small[i].Std(), small[i-1].Less(small[i]))
		}
	})
}

func TestDurationString(t *testing.T) {
	testCases := []struct {
		d        Duration
		expected string
	}{
		{NewDuration(42, 999_000_000), "42"},
		{NewDuration(0, 999_999_999), "0"},
		{NewDuration(-7, -900_000_000), "-7"},
		{NewDuration(0, -500_000_000), "0"},
		{NewDuration(1, 1_000_000_000), "2"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.d.String())
		})
	}
}

func TestDurationStdConversion(t *testing.T) {
	testCases := []struct {
		std      time.Duration
		expected Duration
	}{
		{0, Duration{}},
		{1500 * time.Millisecond, Duration{Secs: 1, Nanos: 500_000_000}},
		{-1500 * time.Millisecond, Duration{Secs: -1, Nanos: -500_000_000}},
		{-500 * time.Millisecond, Duration{Secs: 0, Nanos: -500_000_000}},
		{time.Nanosecond, Duration{Secs: 0, Nanos: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.std.String(), func(t *testing.T) {
			d := FromStd(tc.std)
			assert.Equal(t, tc.expected, d)
			assert.Equal(t, tc.std, d.Std())
		})
	}
}

func TestDurationTime(t *testing.T) {
	d := NewDuration(1_700_000_000, 123)
	assert.Equal(t, time.Unix(1_700_000_000, 123).UTC(), d.Time())
}

func TestParseDuration(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		testCases := []struct {
			secs     string
			nanos    string
			expected Duration
		}{
			{"1", "", Duration{Secs: 1}},
			{"0", "1000000001", Duration{Secs: 1, Nanos: 1}},
			{" -1 ", "500000000", Duration{Secs: 0, Nanos: -500_000_000}},
			{"42", "999000000", Duration{Secs: 42, Nanos: 999_000_000}},
		}

		for _, tc := range testCases {
			t.Run(tc.secs+"/"+tc.nanos, func(t *testing.T) {
				d, err := ParseDuration(tc.secs, tc.nanos)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, d)
			})
		}
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			secs        string
			nanos       string
			description string
		}{
			{"", "", "Empty seconds"},
			{"abc", "", "Non-numeric seconds"},
			{"1.5", "", "Decimal seconds"},
			{"1", "x", "Non-numeric nanos"},
			{"1", "3000000000", "Nanos beyond int32"},
			{"99999999999999999999", "", "Seconds beyond int64"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseDuration(tc.secs, tc.nanos)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidDuration)
			})
		}
	})
}
