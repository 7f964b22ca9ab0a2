package clock

import (
	"errors"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

// Service reads clocks through a TimeSource and implements sleep as a
// poll-and-yield loop.
//
// A sleep costs one scheduling quantum per poll, so it is O(n) in the number
// of quanta that pass rather than O(1). Where the platform offers a timer or
// interrupt driven wait that should be preferred; this loop is for layers
// that have nothing but a clock and a yield.
type Service struct {
	source  coreport.TimeSource
	yielder coreport.Yielder
	logger  coreport.Logger
	metrics metrics
}

// NewService creates a new clock service
func NewService(
	source coreport.TimeSource,
	yielder coreport.Yielder,
	logger coreport.Logger,
) *Service {
	return &Service{
		source:  source,
		yielder: yielder,
		logger:  logger.With(map[string]any{"component": "clock"}),
		metrics: newMetrics(),
	}
}

var _ usecase.ClockUseCase = (*Service)(nil)

// Monotonic reads the monotonic clock
func (s *Service) Monotonic() (entity.Duration, error) {
	return s.read(coreport.ClockMonotonic)
}

// Realtime reads the wall clock
func (s *Service) Realtime() (entity.Duration, error) {
	return s.read(coreport.ClockRealtime)
}

// Sleep polls the monotonic clock until the time elapsed since the first
// reading is strictly greater than d, yielding after every poll that falls
// short. An elapsed time exactly equal to d therefore costs one more yield.
// Negative and zero durations return after the first poll that shows any
// progress (immediately, for negative d).
func (s *Service) Sleep(d entity.Duration) (usecase.SleepResult, error) {
	start, err := s.Monotonic()
	if err != nil {
		return usecase.SleepResult{}, err
	}

	var yields uint64
	for {
		now, err := s.Monotonic()
		if err != nil {
			s.metrics.Yields.Add(float64(yields))
			return usecase.SleepResult{Yields: yields}, err
		}

		elapsed := now.Sub(start)
		if elapsed.Greater(d) {
			s.metrics.Sleeps.Inc()
			s.metrics.Yields.Add(float64(yields))
			s.metrics.Overshoot.Observe(elapsed.Sub(d).Std().Seconds())

			s.logger.Debug("Sleep finished", map[string]any{
				"requested_secs":  d.Secs,
				"requested_nanos": d.Nanos,
				"elapsed_secs":    elapsed.Secs,
				"elapsed_nanos":   elapsed.Nanos,
				"yields":          yields,
			})
			return usecase.SleepResult{Elapsed: elapsed, Yields: yields}, nil
		}

		s.yielder.Yield()
		yields++
	}
}

// read queries one clock and converts any fault into a ClockError
func (s *Service) read(clock coreport.Clock) (entity.Duration, error) {
	d, err := s.source.Now(clock)
	if err == nil {
		return d, nil
	}

	s.metrics.ClockErrors.WithLabelValues(clock.String()).Inc()

	var clockErr *errs.ClockError
	if !errors.As(err, &clockErr) {
		clockErr = errs.NewClockError(clock.String(), err).(*errs.ClockError)
	}

	s.logger.Error("Clock query failed", clockErr.LogFields())
	return entity.Duration{}, clockErr
}
