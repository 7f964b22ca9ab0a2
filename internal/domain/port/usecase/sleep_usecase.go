package usecase

import (
	"context"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// SleepRecordUseCase runs sleeps on behalf of callers and keeps a history of them
type SleepRecordUseCase interface {
	// SleepAndRecord sleeps for d and persists the outcome
	SleepAndRecord(ctx context.Context, d entity.Duration) (*entity.SleepRecord, error)

	// RecentSleeps returns the latest records, newest first
	RecentSleeps(ctx context.Context, limit int) ([]*entity.SleepRecord, error)
}
