package model

import (
	"time"
)

// SleepRecord represents the database model for completed sleeps
type SleepRecord struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	RequestedSecs  int64     `gorm:"not null"`
	RequestedNanos int32     `gorm:"not null"`
	ElapsedSecs    int64     `gorm:"not null"`
	ElapsedNanos   int32     `gorm:"not null"`
	Yields         uint64    `gorm:"not null;default:0"`
	RecordedAt     time.Time `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for SleepRecord
func (SleepRecord) TableName() string {
	return "sleep_records"
}
