package handler

import (
	"fmt"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ClockHandler handles clock and sleep HTTP requests
type ClockHandler struct {
	clockUseCase usecase.ClockUseCase
	sleepUseCase usecase.SleepRecordUseCase
	logger       coreport.Logger
}

// NewClockHandler creates a new clock handler instance
func NewClockHandler(
	clockUseCase usecase.ClockUseCase,
	sleepUseCase usecase.SleepRecordUseCase,
	logger coreport.Logger,
) *ClockHandler {
	return &ClockHandler{
		clockUseCase: clockUseCase,
		sleepUseCase: sleepUseCase,
		logger:       logger,
	}
}

// Monotonic handles the GET /clock/monotonic endpoint
func (h *ClockHandler) Monotonic(c *gin.Context) {
	d, err := h.clockUseCase.Monotonic()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDurationResponse(d))
}

// Realtime handles the GET /clock/realtime endpoint
func (h *ClockHandler) Realtime(c *gin.Context) {
	d, err := h.clockUseCase.Realtime()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDurationResponse(d))
}

// Sleep handles the POST /clock/sleep endpoint. The response is written only
// after the sleep has finished.
func (h *ClockHandler) Sleep(c *gin.Context) {
	var req dto.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid sleep request format", map[string]any{
			"error": err.Error(),
		})
		writeBindError(c, err)
		return
	}

	record, err := h.sleepUseCase.SleepAndRecord(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSleepRecordResponse(record))
}

// RecentSleeps handles the GET /clock/sleeps endpoint
func (h *ClockHandler) RecentSleeps(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, fmt.Errorf("%w: limit must be an integer", errs.ErrInvalidRequest))
			return
		}
		limit = parsed
	}

	records, err := h.sleepUseCase.RecentSleeps(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSleepRecordListResponse(records))
}
