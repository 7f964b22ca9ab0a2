package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// MockTimeSource is a testify mock of core.TimeSource
type MockTimeSource struct {
	mock.Mock
}

// Now mocks the Now method
func (m *MockTimeSource) Now(clock coreport.Clock) (entity.Duration, error) {
	args := m.Called(clock)
	return args.Get(0).(entity.Duration), args.Error(1)
}

// MockYielder is a testify mock of core.Yielder
type MockYielder struct {
	mock.Mock
}

// Yield mocks the Yield method
func (m *MockYielder) Yield() {
	m.Called()
}
