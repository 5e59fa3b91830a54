package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/config"
)

// The lead dashboard is the only browser client. It authenticates with a
// bearer token, so no cookies cross origins.
var (
	defaultCORSOrigins = []string{"http://localhost:5173"}

	defaultCORSMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}

	// always allowed, whatever the config says
	requiredCORSHeaders = []string{
		"Authorization",
		"Content-Type",
		IdempotencyKeyHeader,
		"X-Request-ID",
	}

	exposedCORSHeaders = []string{
		"X-Request-ID",
		"X-Idempotency-Replayed",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
	}
)

// CORSMiddleware lets the dashboard call the lead API from another origin.
// Empty config lists fall back to the dashboard defaults.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}

	headers := slices.Clone(cfg.AllowedHeaders)
	for _, h := range requiredCORSHeaders {
		if !slices.ContainsFunc(headers, func(s string) bool { return strings.EqualFold(s, h) }) {
			headers = append(headers, h)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  methods,
		AllowHeaders:  headers,
		ExposeHeaders: exposedCORSHeaders,
		MaxAge:        time.Hour,
	})
}
