// @title           Taskboard API
// @version         1.0
// @description     프로젝트 칸반 보드 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "taskboard-api/docs" // Swagger docs import

	"taskboard-api/internal/client"
	"taskboard-api/internal/config"
	"taskboard-api/internal/database"
	"taskboard-api/internal/job"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/router"
)

const migrationAttempts = 3

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Taskboard API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("auth_api_url", cfg.AuthAPI.BaseURL),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize database, waiting in the background when it is not up yet
	db, ok := connectDatabase(database.ConfigFrom(cfg.Database), logger, quit)
	if !ok {
		logger.Info("Shutdown requested before the database became available")
		return
	}

	if err := database.SafeAutoMigrateWithRetry(db, logger, migrationAttempts); err != nil {
		logger.Warn("Failed to run database migrations", zap.Error(err))
	} else {
		logger.Info("Database migrations completed")
	}

	database.RegisterMetricsCallbacks(db, m)
	stopDBStats := database.StartDBStatsCollector(db, m, 15*time.Second)

	// Redis backs the access cache when configured
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, access cache stays in-process", zap.Error(err))
		redisClient = nil
	}

	// Initialize S3 client
	var avatarStorage client.AvatarStorage
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, avatar uploads disabled", zap.Error(err))
		} else {
			avatarStorage = s3Client
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, avatar uploads disabled")
	}

	// Token validation goes through the auth service when it is configured
	var authClient middleware.TokenValidator
	if cfg.AuthAPI.BaseURL != "" {
		authClient = client.NewAuthClient(cfg.AuthAPI.BaseURL, cfg.AuthAPI.Timeout, logger, m)
		logger.Info("Auth client initialized", zap.String("auth_api_url", cfg.AuthAPI.BaseURL))
	}

	notificationClient := client.NewNoOpNotificationClient()
	if cfg.Notification.BaseURL != "" {
		notificationClient = client.NewNotificationClient(cfg.Notification.BaseURL, cfg.Notification.APIKey, cfg.Notification.Timeout, logger, m)
		logger.Info("Notification client initialized", zap.String("noti_api_url", cfg.Notification.BaseURL))
	}

	// Setup router with all dependencies
	app := router.Build(router.Config{
		DB:                  db,
		Logger:              logger,
		JWTSecret:           cfg.JWT.Secret,
		AuthClient:          authClient,
		BasePath:            cfg.Server.BasePath,
		AllowedOrigins:      cfg.Server.AllowedOrigins,
		Metrics:             m,
		Redis:               redisClient,
		RedisKeyPrefix:      cfg.Redis.KeyPrefix,
		S3Client:            avatarStorage,
		NotificationClient:  notificationClient,
		SessionIdleTimeout:  cfg.Board.SessionIdleTimeout,
		RenormalizeDebounce: cfg.Board.RenormalizeDebounce,
		InviteSearchLimit:   cfg.Board.InviteSearchLimit,
	})

	collector := metrics.NewBusinessMetricsCollector(app.Counter, m, logger, time.Minute)
	collector.Start()

	// Background jobs
	scheduler := job.NewScheduler(logger)
	if err := scheduler.Add("renormalize", cfg.Board.RenormalizeCron, job.NewRenormalizeJob(app.Maintenance, logger, 10*time.Minute)); err != nil {
		logger.Error("Position renormalization job disabled", zap.Error(err))
	}
	if cfg.Board.SessionIdleTimeout > 0 {
		if err := scheduler.Add("session-sweep", "@every 1m", job.NewSessionSweepJob(app.Sessions, logger)); err != nil {
			logger.Error("Board view sweep disabled", zap.Error(err))
		}
	}
	scheduler.Start()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Taskboard API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop(ctx)
	app.Maintenance.Stop()
	collector.Stop()
	close(stopDBStats)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// connectDatabase returns a connection, retrying every 5 seconds until the
// database is reachable or a shutdown signal arrives
func connectDatabase(dbConfig database.Config, logger *zap.Logger, quit <-chan os.Signal) (*gorm.DB, bool) {
	db, err := database.New(dbConfig)
	if err == nil {
		logger.Info("Database connected successfully")
		return db, true
	}

	logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))
	connected := make(chan *gorm.DB, 1)
	database.NewAsync(dbConfig, 5*time.Second, logger, func(db *gorm.DB) {
		connected <- db
	})

	select {
	case db := <-connected:
		return db, true
	case <-quit:
		return nil, false
	}
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
