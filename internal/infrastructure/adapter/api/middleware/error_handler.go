package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics in later handlers. The panic is reported as
// ErrInternalServer; a response that has already started is only aborted.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err := panicError(recovered)
			logger.Error("Panic recovered in API request", map[string]any{
				"error":      err.Error(),
				"error_code": errs.ErrorCode(err),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"client_ip":  c.ClientIP(),
				"request_id": c.GetHeader("X-Request-ID"),
				"written":    c.Writer.Written(),
				"stack":      string(debug.Stack()),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    errs.ErrorCode(err),
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: panic: %w", errs.ErrInternalServer, err)
	}
	return fmt.Errorf("%w: panic: %v", errs.ErrInternalServer, recovered)
}
