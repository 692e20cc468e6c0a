// Package main is the entry point for the Pawz Connect API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pawz-connect/backend/config"
	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/infra/cache"
	"github.com/pawz-connect/backend/internal/infra/db"
	"github.com/pawz-connect/backend/internal/infra/dependency"
	"github.com/pawz-connect/backend/internal/integration/adapters"
	"github.com/pawz-connect/backend/internal/integration/email"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
	"github.com/pawz-connect/backend/internal/integration/storage"
)

const rateLimiterCleanupInterval = 5 * time.Minute

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Pawz Connect API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.All()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient, err := cache.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()
	slog.Info("Redis connection established")

	objectStorage, err := storage.NewMinIOStorage(appCtx, &cfg.MinIO)
	if err != nil {
		slog.Error("Object storage initialization failed", "error", err)
		os.Exit(1)
	}

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
				slog.Error("Invalid Resend base URL", "error", err)
				os.Exit(1)
			}
		}
		emailSender = resendClient
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		emailSender = email.NewMockEmailSender()
	}

	moderator := adapters.NewGeminiModerator(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !moderator.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, new reviews will stay pending")
	}

	injector, err := dependency.NewInjector(cfg, dependency.Infrastructure{
		DB:          database.DB(),
		Redis:       redisClient,
		Storage:     objectStorage,
		EmailSender: emailSender,
		Moderator:   moderator,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(appCtx)
	}
	injector.LoginRateLimiter.StartCleanup(appCtx, rateLimiterCleanupInterval)

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// Open feed streams end when appCtx is cancelled on shutdown.
		BaseContext: func(net.Listener) context.Context { return appCtx },
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
