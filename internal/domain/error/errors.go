package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidDuration = 4001
	CodeUnknownClock    = 4002
	CodeSleepTooLong    = 4003
	CodeInvalidRequest  = 4004
	CodeRecordNotFound  = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeClockUnavailable   = 5031
	CodeDatabaseConnection = 5032
)

// Base error types
var (
	// ErrClockUnavailable is returned when the kernel clock cannot be queried
	ErrClockUnavailable = errors.New("clock unavailable")

	// ErrUnknownClock is returned when a clock kind is neither monotonic nor realtime
	ErrUnknownClock = errors.New("unknown clock")

	// ErrInvalidDuration is returned when a duration cannot be parsed or is out of range
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrSleepTooLong is returned when a requested sleep exceeds the configured maximum
	ErrSleepTooLong = errors.New("requested sleep exceeds maximum")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRecordNotFound is returned when a sleep record doesn't exist
	ErrRecordNotFound = errors.New("sleep record not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrUnknownClock):
		return CodeUnknownClock
	case errors.Is(err, ErrSleepTooLong):
		return CodeSleepTooLong
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrRecordNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrClockUnavailable):
		return CodeClockUnavailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ClockError describes a failed query against a clock source
type ClockError struct {
	Clock string
	Err   error
}

// Error implements the error interface for ClockError
func (e *ClockError) Error() string {
	return fmt.Sprintf("%s clock query failed: %v", e.Clock, e.Err)
}

// Unwrap returns the underlying error
func (e *ClockError) Unwrap() error {
	return e.Err
}

// Is reports ClockError as ErrClockUnavailable regardless of the wrapped cause
func (e *ClockError) Is(target error) bool {
	return target == ErrClockUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *ClockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "clock_error",
		"clock":      e.Clock,
		"error":      e.Err.Error(),
		"error_code": CodeClockUnavailable,
	}
}

// NewClockError wraps a time source failure for the named clock
func NewClockError(clock string, err error) error {
	return &ClockError{
		Clock: clock,
		Err:   err,
	}
}

// SleepLimitError carries the rejected request and the configured ceiling
type SleepLimitError struct {
	Requested string
	Limit     string
}

// Error implements the error interface
func (e *SleepLimitError) Error() string {
	return fmt.Sprintf("requested sleep of %ss exceeds maximum of %ss", e.Requested, e.Limit)
}

// Is checks if the target error is an ErrSleepTooLong
func (e *SleepLimitError) Is(target error) bool {
	return target == ErrSleepTooLong
}

// LogFields returns a map of fields for structured logging
func (e *SleepLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sleep_limit",
		"requested":  e.Requested,
		"limit":      e.Limit,
		"error_code": CodeSleepTooLong,
	}
}

// NewSleepLimitError creates a new sleep limit error
func NewSleepLimitError(requested, limit string) error {
	return &SleepLimitError{
		Requested: requested,
		Limit:     limit,
	}
}

// IsClockError checks if the error came from a failed clock query
func IsClockError(err error) bool {
	return errors.Is(err, ErrClockUnavailable)
}

// IsClientError checks if the error was caused by caller input
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrUnknownClock) ||
		errors.Is(err, ErrSleepTooLong) ||
		errors.Is(err, ErrInvalidRequest)
}
