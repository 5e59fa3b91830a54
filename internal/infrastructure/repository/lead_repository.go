package repository

import (
	"context"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
	domainRepo "github.com/sangkips/leadflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// Update writes every column; a record missing from the store is inserted
func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Lead{}, "id = ?", id).Error
}
