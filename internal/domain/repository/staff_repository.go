package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
)

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	// List returns every staff member ordered by name
	List(ctx context.Context) ([]entity.Staff, error)
}
