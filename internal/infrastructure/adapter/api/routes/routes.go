package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	clockHandler *handler.ClockHandler,
	durationHandler *handler.DurationHandler,
) {
	// GET /health
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Clock routes
	clockRoutes := router.Group("/clock")
	{
		// GET /clock/monotonic
		clockRoutes.GET("/monotonic", clockHandler.Monotonic)

		// GET /clock/realtime
		clockRoutes.GET("/realtime", clockHandler.Realtime)

		// POST /clock/sleep
		clockRoutes.POST("/sleep", clockHandler.Sleep)

		// GET /clock/sleeps?limit=N
		clockRoutes.GET("/sleeps", clockHandler.RecentSleeps)
	}

	// Duration routes
	durationRoutes := router.Group("/duration")
	{
		durationRoutes.GET("/normalize", durationHandler.Normalize)
		durationRoutes.POST("/add", durationHandler.Add)
		durationRoutes.POST("/sub", durationHandler.Sub)
		durationRoutes.POST("/compare", durationHandler.Compare)
	}
}

// SetupMetrics exposes the collectors gathered by gatherer on path
func SetupMetrics(router *gin.Engine, path string, gatherer prometheus.Gatherer) {
	router.GET(path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API.
// httpMetrics may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, httpMetrics *middleware.HTTPMetrics) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if httpMetrics != nil {
		router.Use(middleware.Metrics(httpMetrics))
	}
}
