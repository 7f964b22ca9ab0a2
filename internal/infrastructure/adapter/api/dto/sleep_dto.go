package dto

import (
	"time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// SleepRecordResponse represents one completed sleep
type SleepRecordResponse struct {
	ID         uint64           `json:"id"`
	Requested  DurationResponse `json:"requested"`
	Elapsed    DurationResponse `json:"elapsed"`
	Overshoot  DurationResponse `json:"overshoot"`
	Yields     uint64           `json:"yields"`
	RecordedAt time.Time        `json:"recordedAt"`
}

// NewSleepRecordResponse builds a response from a domain record
func NewSleepRecordResponse(record *entity.SleepRecord) SleepRecordResponse {
	return SleepRecordResponse{
		ID:         record.ID,
		Requested:  NewDurationResponse(record.Requested),
		Elapsed:    NewDurationResponse(record.Elapsed),
		Overshoot:  NewDurationResponse(record.Overshoot()),
		Yields:     record.Yields,
		RecordedAt: record.RecordedAt,
	}
}

// SleepRecordListResponse wraps a page of sleep records
type SleepRecordListResponse struct {
	Records []SleepRecordResponse `json:"records"`
	Count   int                   `json:"count"`
}

// NewSleepRecordListResponse builds a list response, never with a null records field
func NewSleepRecordListResponse(records []*entity.SleepRecord) SleepRecordListResponse {
	items := make([]SleepRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, NewSleepRecordResponse(record))
	}
	return SleepRecordListResponse{Records: items, Count: len(items)}
}
