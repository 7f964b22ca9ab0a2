package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE classes that mean the server or the connection is unavailable
var unavailableClasses = map[string]bool{
	"08": true, // connection exception
	"53": true, // insufficient resources
	"57": true, // operator intervention
}

// MapError converts a GORM or driver error into a domain error.
// Cancellation by the caller is returned unchanged.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRecordNotFound
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
	}

	return fmt.Errorf("%w: %s: %s", errs.ErrInternalServer, operation, err.Error())
}

// isUnavailable reports errors that mean the database could not be reached in time
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return unavailableClasses[sqlStateClass(pgErr.Code)]
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "dial tcp") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "timeout") ||
		strings.HasSuffix(errMsg, "eof")
}

// IsTransientError reports errors that may succeed when retried
func IsTransientError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 40 is transaction rollback, which covers serialization failures and deadlocks
		class := sqlStateClass(pgErr.Code)
		return class == "40" || unavailableClasses[class]
	}

	return isUnavailable(err) && !errors.Is(err, context.DeadlineExceeded)
}

func sqlStateClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}
