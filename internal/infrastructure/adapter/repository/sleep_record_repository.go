package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SleepRecordRepository implements persistence.SleepRecordRepository using GORM
type SleepRecordRepository struct {
	db           *gorm.DB
	logger       coreport.Logger
	queryTimeout time.Duration
	metrics      *database.QueryMetrics
	retry        database.RetryConfig
}

// NewSleepRecordRepository creates a new SleepRecordRepository instance.
// A zero queryTimeout leaves the caller's context untouched; metrics may be nil.
func NewSleepRecordRepository(
	db *gorm.DB,
	logger coreport.Logger,
	queryTimeout time.Duration,
	metrics *database.QueryMetrics,
) persistence.SleepRecordRepository {
	return &SleepRecordRepository{
		db:           db,
		logger:       logger,
		queryTimeout: queryTimeout,
		metrics:      metrics,
		retry:        database.DefaultRetryConfig(),
	}
}

// entityToModel converts a sleep record entity to a database model
func entityToModel(record *entity.SleepRecord) model.SleepRecord {
	return model.SleepRecord{
		ID:             record.ID,
		RequestedSecs:  record.Requested.Secs,
		RequestedNanos: record.Requested.Nanos,
		ElapsedSecs:    record.Elapsed.Secs,
		ElapsedNanos:   record.Elapsed.Nanos,
		Yields:         record.Yields,
		RecordedAt:     record.RecordedAt,
	}
}

// modelToEntity converts a database model back to an entity. Stored fields
// are already normalized; they are passed through NewDuration anyway so rows
// written by hand cannot produce mixed-sign values.
func modelToEntity(m model.SleepRecord) *entity.SleepRecord {
	return &entity.SleepRecord{
		ID:         m.ID,
		Requested:  entity.NewDuration(m.RequestedSecs, m.RequestedNanos),
		Elapsed:    entity.NewDuration(m.ElapsedSecs, m.ElapsedNanos),
		Yields:     m.Yields,
		RecordedAt: m.RecordedAt.UTC(),
	}
}

func (r *SleepRecordRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// Create saves a new sleep record and copies the generated ID back.
// Inserts are not retried: a lost acknowledgement would duplicate the row.
func (r *SleepRecordRepository) Create(ctx context.Context, record *entity.SleepRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	recordModel := entityToModel(record)

	err := r.metrics.MeasureQuery("create_sleep_record", func() error {
		return r.db.WithContext(ctx).Create(&recordModel).Error
	})
	if err != nil {
		r.logger.Error("Failed to create sleep record", map[string]any{
			"error": err.Error(),
		})
		return database.MapError(err, "create sleep record")
	}

	record.ID = recordModel.ID

	r.logger.Debug("Sleep record created", map[string]any{
		"record_id": record.ID,
	})
	return nil
}

// ListRecent returns up to limit records ordered from newest to oldest
func (r *SleepRecordRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SleepRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var models []model.SleepRecord
	err := database.RetryOnTransientError(ctx, r.retry, func(ctx context.Context) error {
		models = models[:0]
		return r.metrics.MeasureQuery("list_sleep_records", func() error {
			return r.db.WithContext(ctx).
				Order("recorded_at DESC").
				Order("id DESC").
				Limit(limit).
				Find(&models).Error
		})
	}, r.logger)
	if err != nil {
		r.logger.Error("Failed to list sleep records", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, database.MapError(err, "list sleep records")
	}

	records := make([]*entity.SleepRecord, 0, len(models))
	for _, m := range models {
		records = append(records, modelToEntity(m))
	}
	return records, nil
}
