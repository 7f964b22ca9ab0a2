package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/timekeeper"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/clock"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/sleep"

	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/repository"
	timeSource "github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Kernel clocks and the scheduler
	source := timeSource.NewSystemTimeSource()
	yielder := timeSource.NewSchedulerYielder()

	clockService := clock.NewService(source, yielder, appLogger)

	// Collectors are always registered; the registry is only served when metrics are enabled
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(clockService.Metrics()...)

	// Sleep history storage
	sleepRepo, closeStore, err := newSleepRecordRepository(cfg, appLogger, source, reg)
	if err != nil {
		appLogger.Error("Failed to initialize sleep record storage", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer closeStore()

	recorder := sleep.NewRecorder(clockService, sleepRepo, appLogger, entity.NewDuration(cfg.Clock.MaxSleepSeconds, 0))

	// Initialize API handlers
	clockHandler := handler.NewClockHandler(clockService, recorder, appLogger)
	durationHandler := handler.NewDurationHandler(appLogger)

	// Initialize Gin router
	router := gin.New()

	var httpMetrics *middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewHTTPMetrics(reg)
		routes.SetupMetrics(router, cfg.Metrics.Path, reg)
	}

	// Setup middlewares and routes
	routes.SetupMiddlewares(router, appLogger, httpMetrics)
	routes.SetupRoutes(router, clockHandler, durationHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":              server.Addr,
			"version":           timekeeper.Version,
			"env":               cfg.Environment,
			"max_sleep_seconds": cfg.Clock.MaxSleepSeconds,
			"database":          cfg.Database.Enabled,
			"metrics":           cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Sleeps in flight cannot be interrupted; shutdown waits for them up to the deadline
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newSleepRecordRepository picks the postgres store when the database is
// enabled and the in-memory ring otherwise. The returned func releases it.
func newSleepRecordRepository(
	cfg *config.Config,
	appLogger coreport.Logger,
	source coreport.TimeSource,
	reg prometheus.Registerer,
) (persistence.SleepRecordRepository, func(), error) {
	if !cfg.Database.Enabled {
		appLogger.Info("Database disabled, keeping sleep history in memory", map[string]any{
			"capacity": cfg.Clock.HistorySize,
		})
		return repository.NewMemorySleepRecordRepository(cfg.Clock.HistorySize), func() {}, nil
	}

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, source)
	if _, err := dbManager.Connect(); err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout*4)
	defer cancel()
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	sqlDB, err := dbManager.DB().DB()
	if err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("pool: %w", err)
	}
	reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, dbConfig.Database))

	queryMetrics := database.NewQueryMetrics(appLogger, database.DefaultSlowQueryThreshold)
	reg.MustRegister(queryMetrics.Collectors()...)

	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}
	return repository.NewSleepRecordRepository(dbManager.DB(), appLogger, cfg.Database.QueryTimeout, queryMetrics), closeFn, nil
}
