package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/repository"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
	// IdempotencyClaimTTL bounds how long an unfinished request holds its key
	IdempotencyClaimTTL = 5 * time.Minute
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	Log  *zap.Logger
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST or PUT arrives again
// with the same Idempotency-Key from the same client. The key is claimed
// before the handler runs, so a concurrent duplicate gets 409 Conflict instead
// of a second write. Only 2xx responses are kept; any other outcome releases
// the claim so a failed submission can be retried.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	log := config.Log
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}
		clientID := ClientID(c)
		ctx := c.Request.Context()

		existing, err := config.Repo.GetByKey(ctx, idempotencyKey, clientID)
		if err != nil {
			log.Warn("Idempotency lookup failed", zap.String("key", idempotencyKey), zap.Error(err))
			c.Next()
			return
		}

		if existing != nil {
			if !existing.IsExpired() {
				if existing.IsPending() {
					rejectInFlight(c)
					return
				}
				c.Header("X-Idempotency-Replayed", "true")
				c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
				c.Abort()
				return
			}
			// the expired row still holds the unique slot
			if err := config.Repo.Release(ctx, idempotencyKey, clientID); err != nil {
				log.Warn("Failed to release expired idempotency key", zap.String("key", idempotencyKey), zap.Error(err))
			}
		}

		ikey := &entity.IdempotencyKey{
			Key:       idempotencyKey,
			ClientID:  clientID,
			Endpoint:  c.Request.Method + " " + c.FullPath(),
			ExpiresAt: time.Now().Add(IdempotencyClaimTTL),
		}
		if err := config.Repo.Create(ctx, ikey); err != nil {
			if errors.Is(err, repository.ErrIdempotencyKeyExists) {
				rejectInFlight(c)
				return
			}
			log.Warn("Failed to claim idempotency key", zap.String("key", idempotencyKey), zap.Error(err))
			c.Next()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// the claim must be settled even if the client went away
		ctx = context.WithoutCancel(ctx)
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			if err := config.Repo.Release(ctx, idempotencyKey, clientID); err != nil {
				log.Warn("Failed to release idempotency key", zap.String("key", idempotencyKey), zap.Error(err))
			}
			return
		}

		ikey.ResponseCode = status
		ikey.ResponseBody = blw.body.String()
		ikey.ExpiresAt = time.Now().Add(IdempotencyKeyTTL)
		if err := config.Repo.Complete(ctx, ikey); err != nil {
			log.Warn("Failed to store idempotency key", zap.String("key", idempotencyKey), zap.Error(err))
		}
	}
}

func rejectInFlight(c *gin.Context) {
	response.Error(c, apperror.NewConflictError("A request with this Idempotency-Key is still being processed"))
	c.Abort()
}
