package repository

import (
	"context"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
)

// LeadRepository is the durable lead store. The only read pattern is the full
// set ordered by created_at descending; writes are full-record.
type LeadRepository interface {
	// ListAll returns every lead, newest first
	ListAll(ctx context.Context) ([]entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) error
	// Update overwrites the stored record with the given one
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}
