package repository

import (
	"context"
	"errors"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
)

// ErrIdempotencyKeyExists is returned by Create when the client already holds the key
var ErrIdempotencyKeyExists = errors.New("idempotency key already exists")

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and client
	GetByKey(ctx context.Context, key, clientID string) (*entity.IdempotencyKey, error)
	// Create claims a key. It fails with ErrIdempotencyKeyExists if the
	// (key, client) pair is already stored.
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Complete records the response of a claimed key
	Complete(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Release drops a claim so the request can be retried
	Release(ctx context.Context, key, clientID string) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) error
}
