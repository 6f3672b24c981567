package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/config"
	"github.com/ngenohkevin/zid-admin/internal/database"
	"github.com/ngenohkevin/zid-admin/internal/handlers"
	"github.com/ngenohkevin/zid-admin/internal/middleware"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/router"
	"github.com/ngenohkevin/zid-admin/internal/services"
	"github.com/ngenohkevin/zid-admin/internal/telemetry"
	"github.com/ngenohkevin/zid-admin/internal/zid"
	"github.com/redis/go-redis/v9"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logger
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Server.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()
	metrics := telemetry.NewMetrics(nil)
	healthChecks := map[string]handlers.HealthChecker{}

	// Commerce API client; one attempt per call, no timeout unless configured
	client := zid.NewClient(
		zid.Config{
			StoreID:     cfg.Zid.StoreID,
			AccessToken: cfg.Zid.AccessToken,
			BaseURL:     cfg.Zid.BaseURL,
		},
		zid.WithHTTPClient(&http.Client{Timeout: cfg.Zid.Timeout}),
		zid.WithRateLimit(cfg.Zid.RequestsPerSecond, cfg.Zid.Burst),
		zid.WithRecorder(metrics),
		zid.WithLogger(logger),
	)
	if cfg.Zid.StoreID == "" || cfg.Zid.AccessToken == "" {
		slog.Warn("Zid store credentials are not set; remote calls will fail authentication")
	}

	// Redis backs inbound rate limiting and token revocation
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		rc, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer rc.Close()
		redisClient = rc.Client
		healthChecks["redis"] = rc
	}

	// Audit trail database
	var auditService *services.AuditService
	if cfg.Database.Enabled() {
		db, err := database.New(ctx, cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		healthChecks["database"] = db

		auditService = services.NewAuditService(database.NewAuditQueries(db.Pool), 0, logger)
		defer auditService.Close()
	}

	deps := router.Dependencies{
		API:            client,
		ProductService: services.NewProductService(client, cfg.Gateway.BulkConcurrency, metrics, logger),
		RateLimiter:    middleware.NewRateLimiter(redisClient, logger),
		APILimit: middleware.RateLimit{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		},
		Metrics:      metrics,
		HealthChecks: healthChecks,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Version:      version,
	}
	if auditService != nil {
		deps.AuditService = auditService
	}

	// Operator authentication is optional
	if cfg.JWT.Enabled() {
		operators := make([]models.Operator, 0, len(cfg.Operators))
		for _, op := range cfg.Operators {
			operators = append(operators, models.Operator{
				Username:     op.Username,
				PasswordHash: op.PasswordHash,
				Role:         models.OperatorRole(op.Role),
			})
		}

		authService, err := services.NewAuthService(
			cfg.JWT.Secret,
			time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
			operators,
			logger,
			redisClient,
		)
		if err != nil {
			slog.Error("Failed to initialize auth service", "error", err)
			os.Exit(1)
		}
		deps.AuthService = authService
	} else {
		slog.Warn("jwt.secret is empty; gateway routes are not authenticated")
	}

	r := router.New(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port, "mode", cfg.Server.Mode, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}
