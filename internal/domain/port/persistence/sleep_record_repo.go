package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// SleepRecordRepository stores the outcome of completed sleeps
type SleepRecordRepository interface {
	// Create persists a record and fills in its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, record *entity.SleepRecord) error

	// ListRecent returns up to limit records, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListRecent(ctx context.Context, limit int) ([]*entity.SleepRecord, error)
}
