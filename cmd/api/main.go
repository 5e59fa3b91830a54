package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/config"
	domainRepo "github.com/sangkips/leadflow-api/internal/domain/repository"
	"github.com/sangkips/leadflow-api/internal/infrastructure/database"
	"github.com/sangkips/leadflow-api/internal/infrastructure/repository"
	"github.com/sangkips/leadflow-api/internal/presentation/http/handler"
	"github.com/sangkips/leadflow-api/internal/presentation/http/routes"
	"github.com/sangkips/leadflow-api/pkg/advisory"
	"github.com/sangkips/leadflow-api/pkg/logger"
	"github.com/sangkips/leadflow-api/pkg/utils"
	"go.uber.org/zap"
)

const (
	shutdownTimeout         = 15 * time.Second
	idempotencySweepEvery   = time.Hour
	initialFetchTimeout     = 30 * time.Second
	idempotencySweepTimeout = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(cfg.App.Env, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, zapLog); err != nil {
		zapLog.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db, zapLog); err != nil {
		zapLog.Warn("Failed to seed default data", zap.Error(err))
	}

	loc := cfg.App.Location()

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	staffService := service.NewStaffService(staffRepo, zapLog)
	if err := staffService.Load(ctx); err != nil {
		zapLog.Warn("Failed to load staff directory", zap.Error(err))
	}

	notifier := service.NewNotifier(cfg.Store.NotificationsBuffer)
	leadService := service.NewLeadService(leadRepo, staffService, notifier, cfg.Store, zapLog)

	fetchCtx, cancelFetch := context.WithTimeout(ctx, initialFetchTimeout)
	if err := leadService.FetchAll(fetchCtx); err != nil {
		zapLog.Warn("Initial lead fetch failed; starting with an empty set", zap.Error(err))
	}
	cancelFetch()

	advisor := newAdvisor(ctx, &cfg.Advisory, zapLog)
	dashboardService := service.NewDashboardService(leadService, staffService, loc)
	advisoryService := service.NewAdvisoryService(leadService, advisor, zapLog)

	// Initialize handlers
	handlers := &routes.Handlers{
		Lead:         handler.NewLeadHandler(leadService, dashboardService, loc),
		Dashboard:    handler.NewDashboardHandler(dashboardService, loc),
		Staff:        handler.NewStaffHandler(staffService),
		Advisory:     handler.NewAdvisoryHandler(advisoryService),
		Notification: handler.NewNotificationHandler(notifier),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	go rateLimiter.Run(ctx.Done())
	go sweepIdempotencyKeys(ctx, idempotencyRepo, zapLog)

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer),
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Log:             zapLog,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.Bool("auth_enabled", cfg.JWT.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Server shutdown failed", zap.Error(err))
	}
	if err := leadService.Drain(shutdownCtx); err != nil {
		zapLog.Warn("Pending lead writes did not finish", zap.Int64("in_flight", leadService.Status().InFlight), zap.Error(err))
	}
}

// newAdvisor returns the Gemini advisor when an API key is configured and a
// fallback-only advisor otherwise
func newAdvisor(ctx context.Context, cfg *config.AdvisoryConfig, log *zap.Logger) advisory.Advisor {
	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; AI advisory returns fallback text")
		return advisory.NewUnavailableAdvisor(log)
	}

	client, err := advisory.NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		log.Error("Failed to create Gemini client", zap.Error(err))
		return advisory.NewUnavailableAdvisor(log)
	}

	return advisory.NewGeminiAdvisor(client.Models, advisory.GeminiConfig{
		APIKey:        cfg.APIKey,
		ChatModel:     cfg.ChatModel,
		StrategyModel: cfg.StrategyModel,
		Timeout:       cfg.Timeout,
	}, log)
}

func sweepIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(idempotencySweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, idempotencySweepTimeout)
			if err := repo.DeleteExpired(sweepCtx); err != nil {
				log.Warn("Failed to delete expired idempotency keys", zap.Error(err))
			}
			cancel()
		}
	}
}
