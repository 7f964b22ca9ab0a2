package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DurationHandler exposes duration arithmetic over HTTP
type DurationHandler struct {
	logger coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(logger coreport.Logger) *DurationHandler {
	return &DurationHandler{logger: logger}
}

// Normalize handles the GET /duration/normalize?secs=S&nanos=N endpoint
func (h *DurationHandler) Normalize(c *gin.Context) {
	d, err := entity.ParseDuration(c.DefaultQuery("secs", "0"), c.Query("nanos"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDurationResponse(d))
}

// Add handles the POST /duration/add endpoint
func (h *DurationHandler) Add(c *gin.Context) {
	a, b, ok := h.bindPair(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewDurationResponse(entity.AddDurations(a, b)))
}

// Sub handles the POST /duration/sub endpoint
func (h *DurationHandler) Sub(c *gin.Context) {
	a, b, ok := h.bindPair(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewDurationResponse(entity.SubtractDurations(a, b)))
}

// Compare handles the POST /duration/compare endpoint
func (h *DurationHandler) Compare(c *gin.Context) {
	a, b, ok := h.bindPair(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewCompareResponse(entity.Compare(a, b)))
}

// bindPair parses both operands, writing a 400 response on failure
func (h *DurationHandler) bindPair(c *gin.Context) (entity.Duration, entity.Duration, bool) {
	var req dto.DurationPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid duration request format", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		writeBindError(c, err)
		return entity.Duration{}, entity.Duration{}, false
	}
	return req.A.ToEntity(), req.B.ToEntity(), true
}
