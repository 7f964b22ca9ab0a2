package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
)

func TestMapError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"not found", gorm.ErrRecordNotFound, errs.ErrRecordNotFound},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), errs.ErrDatabaseConnection},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), errs.ErrDatabaseConnection},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, errs.ErrDatabaseConnection},
		{"too many connections", &pgconn.PgError{Code: "53300"}, errs.ErrDatabaseConnection},
		{"missing table", &pgconn.PgError{Code: "42P01", Message: `relation "sleep_records" does not exist`}, errs.ErrInternalServer},
		{"unknown", errors.New("something odd"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err, "list sleep records")
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil, "create"))
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		assert.Same(t, context.Canceled, MapError(context.Canceled, "create"))
	})

	t.Run("operation is named", func(t *testing.T) {
		mapped := MapError(errors.New("connection reset by peer"), "create sleep record")
		assert.Contains(t, mapped.Error(), "create sleep record")
	})
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, IsTransientError(nil))
	assert.False(t, IsTransientError(context.Canceled))
	assert.False(t, IsTransientError(context.DeadlineExceeded))
	assert.False(t, IsTransientError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsTransientError(errors.New("syntax error")))

	assert.True(t, IsTransientError(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsTransientError(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, IsTransientError(&pgconn.PgError{Code: "08006"}))
	assert.True(t, IsTransientError(errors.New("read: connection reset by peer")))
	assert.True(t, IsTransientError(errors.New("unexpected EOF")))
}
