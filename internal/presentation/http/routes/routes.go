package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/leadflow-api/internal/config"
	domainRepo "github.com/sangkips/leadflow-api/internal/domain/repository"
	"github.com/sangkips/leadflow-api/internal/presentation/http/handler"
	"github.com/sangkips/leadflow-api/internal/presentation/http/middleware"
	"github.com/sangkips/leadflow-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Lead         *handler.LeadHandler
	Dashboard    *handler.DashboardHandler
	Staff        *handler.StaffHandler
	Advisory     *handler.AdvisoryHandler
	Notification *handler.NotificationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
	Log             *zap.Logger
}

// NewRateLimiter builds the per-client limiter from the configured quota
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	rlCfg := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rlCfg.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rlCfg.BurstSize = cfg.Requests
	}
	rlCfg.CleanupInterval = 5 * time.Minute
	rlCfg.EntryTTL = 10 * time.Minute
	return middleware.NewClientRateLimiter(rlCfg)
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if deps.Cfg.JWT.Enabled {
		v1.Use(middleware.AuthMiddleware(deps.JWTManager))
	} else {
		v1.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))
	}
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerLeadRoutes(v1, h, deps)
	registerStaffRoutes(v1, h)

	// Dashboard
	v1.GET("/dashboard", h.Dashboard.GetSummary)
	v1.GET("/reports", h.Dashboard.GetReport)

	// Notifications
	v1.GET("/notifications", h.Notification.List)
	v1.DELETE("/notifications", h.Notification.Clear)

	return router
}

func registerLeadRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	leads := v1.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		if deps.IdempotencyRepo != nil {
			leads.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
				Log:  deps.Log,
			}), h.Lead.Create)
		} else {
			leads.POST("", h.Lead.Create)
		}
		leads.GET("/sync", h.Lead.SyncStatus)
		leads.POST("/sync", h.Lead.Sync)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.DELETE("/:id", h.Lead.Delete)

		// AI advisory
		leads.POST("/:id/chat-analysis", h.Advisory.AnalyzeChat)
		leads.POST("/:id/strategy", h.Advisory.Strategy)
		leads.POST("/:id/summary", h.Advisory.Summary)
	}
}

func registerStaffRoutes(v1 *gin.RouterGroup, h *Handlers) {
	staff := v1.Group("/staff")
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.PUT("/:id", h.Staff.Update)
	}
}
