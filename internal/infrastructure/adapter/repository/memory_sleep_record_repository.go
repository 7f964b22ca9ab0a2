package repository

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/persistence"
)

// MemorySleepRecordRepository keeps the newest sleep records in a fixed-size ring.
// It is used when no database is configured.
type MemorySleepRecordRepository struct {
	mu      sync.RWMutex
	records []entity.SleepRecord
	next    int
	count   int
	lastID  uint64
}

// NewMemorySleepRecordRepository creates a ring holding at most capacity records
func NewMemorySleepRecordRepository(capacity int) persistence.SleepRecordRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &MemorySleepRecordRepository{
		records: make([]entity.SleepRecord, capacity),
	}
}

// Create stores a copy of record, evicting the oldest one when full
func (r *MemorySleepRecordRepository) Create(ctx context.Context, record *entity.SleepRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	record.ID = r.lastID

	r.records[r.next] = *record
	r.next = (r.next + 1) % len(r.records)
	if r.count < len(r.records) {
		r.count++
	}
	return nil
}

// ListRecent returns up to limit records, newest first
func (r *MemorySleepRecordRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SleepRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > r.count {
		limit = r.count
	}

	result := make([]*entity.SleepRecord, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		idx := (r.next - 1 - i + len(r.records)) % len(r.records)
		record := r.records[idx]
		result = append(result, &record)
	}
	return result, nil
}
