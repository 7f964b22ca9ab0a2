package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	"github.com/amirhossein-jamali/timekeeper/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	t.Run("should render a panic as an internal error", func(t *testing.T) {
		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", "Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "internal server error: panic: boom" &&
				fields["error_code"] == errs.CodeInternalServer &&
				fields["written"] == false
		})).Return()

		router := gin.New()
		router.Use(ErrorHandler(mockLogger))
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
		mockLogger.AssertExpectations(t)
	})

	t.Run("should keep a panicking error in the chain", func(t *testing.T) {
		cause := errors.New("nil clock")
		err := panicError(cause)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, errs.CodeInternalServer, errs.ErrorCode(err))
	})

	t.Run("should not write a second body after the response started", func(t *testing.T) {
		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", "Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["written"] == true
		})).Return()

		router := gin.New()
		router.Use(ErrorHandler(mockLogger))
		router.GET("/partial", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("late")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
		mockLogger.AssertExpectations(t)
	})
}

func TestLogger(t *testing.T) {
	t.Run("should log successful requests at info", func(t *testing.T) {
		mockLogger := new(core.MockLogger)
		mockLogger.On("Info", "Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["path"] == "/ok" && fields["status"] == http.StatusOK && fields["status_text"] == "Success"
		})).Return()

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		mockLogger.AssertExpectations(t)
	})

	t.Run("should log server errors at error", func(t *testing.T) {
		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", "Request failed", mock.Anything).Return()

		router := gin.New()
		router.Use(Logger(mockLogger))
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

		mockLogger.AssertExpectations(t)
		mockLogger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(204))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(422))
	assert.Equal(t, "Server Error", statusText(503))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/clock/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clock/monotonic", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Requests.WithLabelValues("/clock/:kind", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", http.MethodGet, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Latency))
}
