package sleep

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

const (
	// DefaultRecentLimit is used when a caller asks for a non-positive number of records
	DefaultRecentLimit = 20
	// MaxRecentLimit caps how many records one query returns
	MaxRecentLimit = 100
)

// Recorder runs sleeps through the clock use case and stores their outcome
type Recorder struct {
	clock    usecase.ClockUseCase
	repo     persistence.SleepRecordRepository
	logger   coreport.Logger
	maxSleep entity.Duration
}

// NewRecorder creates a new sleep recorder. A zero maxSleep disables the upper bound.
func NewRecorder(
	clock usecase.ClockUseCase,
	repo persistence.SleepRecordRepository,
	logger coreport.Logger,
	maxSleep entity.Duration,
) usecase.SleepRecordUseCase {
	return &Recorder{
		clock:    clock,
		repo:     repo,
		logger:   logger,
		maxSleep: maxSleep,
	}
}

// SleepAndRecord validates d, sleeps, stamps the result with the wall clock and persists it.
// The sleep itself cannot be interrupted; ctx is only checked before it starts
// and used for persistence.
func (r *Recorder) SleepAndRecord(ctx context.Context, d entity.Duration) (*entity.SleepRecord, error) {
	if d.Less(entity.Duration{}) {
		return nil, fmt.Errorf("%w: sleep duration cannot be negative", errs.ErrInvalidDuration)
	}
	if !r.maxSleep.IsZero() && d.Greater(r.maxSleep) {
		return nil, errs.NewSleepLimitError(d.String(), r.maxSleep.String())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.clock.Sleep(d)
	if err != nil {
		r.logger.Error("Sleep failed", map[string]any{
			"requested_secs":  d.Secs,
			"requested_nanos": d.Nanos,
			"yields":          result.Yields,
			"error":           err.Error(),
		})
		return nil, err
	}

	now, err := r.clock.Realtime()
	if err != nil {
		return nil, err
	}

	record := entity.NewSleepRecord(d, result.Elapsed, result.Yields, now.Time())
	if err := r.repo.Create(ctx, record); err != nil {
		r.logger.Error("Failed to store sleep record", map[string]any{
			"requested_secs":  d.Secs,
			"requested_nanos": d.Nanos,
			"error":           err.Error(),
		})
		return nil, err
	}

	overshoot := record.Overshoot()
	r.logger.Info("Sleep recorded", map[string]any{
		"record_id":       record.ID,
		"requested_secs":  d.Secs,
		"requested_nanos": d.Nanos,
		"overshoot_secs":  overshoot.Secs,
		"overshoot_nanos": overshoot.Nanos,
		"yields":          record.Yields,
	})

	return record, nil
}

// RecentSleeps returns the newest records. A non-positive limit selects
// DefaultRecentLimit and anything above MaxRecentLimit is capped.
func (r *Recorder) RecentSleeps(ctx context.Context, limit int) ([]*entity.SleepRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	records, err := r.repo.ListRecent(ctx, limit)
	if err != nil {
		r.logger.Error("Failed to list sleep records", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	return records, nil
}
