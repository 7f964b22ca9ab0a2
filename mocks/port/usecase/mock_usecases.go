package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
)

// MockClockUseCase is a testify mock of usecase.ClockUseCase
type MockClockUseCase struct {
	mock.Mock
}

// Monotonic mocks the Monotonic method
func (m *MockClockUseCase) Monotonic() (entity.Duration, error) {
	args := m.Called()
	return args.Get(0).(entity.Duration), args.Error(1)
}

// Realtime mocks the Realtime method
func (m *MockClockUseCase) Realtime() (entity.Duration, error) {
	args := m.Called()
	return args.Get(0).(entity.Duration), args.Error(1)
}

// Sleep mocks the Sleep method
func (m *MockClockUseCase) Sleep(d entity.Duration) (usecase.SleepResult, error) {
	args := m.Called(d)
	return args.Get(0).(usecase.SleepResult), args.Error(1)
}

// MockSleepRecordUseCase is a testify mock of usecase.SleepRecordUseCase
type MockSleepRecordUseCase struct {
	mock.Mock
}

// SleepAndRecord mocks the SleepAndRecord method
func (m *MockSleepRecordUseCase) SleepAndRecord(ctx context.Context, d entity.Duration) (*entity.SleepRecord, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SleepRecord), args.Error(1)
}

// RecentSleeps mocks the RecentSleeps method
func (m *MockSleepRecordUseCase) RecentSleeps(ctx context.Context, limit int) ([]*entity.SleepRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SleepRecord), args.Error(1)
}
