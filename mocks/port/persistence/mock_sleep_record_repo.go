package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
)

// MockSleepRecordRepository is a testify mock of persistence.SleepRecordRepository
type MockSleepRecordRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockSleepRecordRepository) Create(ctx context.Context, record *entity.SleepRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// ListRecent mocks the ListRecent method
func (m *MockSleepRecordRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SleepRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SleepRecord), args.Error(1)
}
