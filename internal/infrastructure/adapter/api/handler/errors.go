package handler

import (
	"context"
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes and client-facing messages
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrSleepTooLong):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrUnknownClock):
		return http.StatusBadRequest, "Unknown clock"
	case errs.IsClientError(err):
		return http.StatusBadRequest, err.Error()
	case errs.IsClockError(err):
		return http.StatusServiceUnavailable, "Clock unavailable"
	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable, "Storage unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Request cancelled"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeError renders err as an ErrorResponse
func writeError(c *gin.Context, err error) {
	status, message := statusFor(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// writeBindError renders a malformed request body
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
