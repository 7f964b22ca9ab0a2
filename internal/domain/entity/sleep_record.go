package entity

import "time"

// SleepRecord is the outcome of one completed busy-wait sleep
type SleepRecord struct {
	ID         uint64
	Requested  Duration
	Elapsed    Duration
	Yields     uint64
	RecordedAt time.Time
}

// NewSleepRecord creates a record for a finished sleep
func NewSleepRecord(requested, elapsed Duration, yields uint64, recordedAt time.Time) *SleepRecord {
	return &SleepRecord{
		Requested:  requested,
		Elapsed:    elapsed,
		Yields:     yields,
		RecordedAt: recordedAt,
	}
}

// Overshoot returns how far past the requested span the sleep ran
func (r *SleepRecord) Overshoot() Duration {
	return r.Elapsed.Sub(r.Requested)
}
