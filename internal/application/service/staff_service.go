package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/application/analytics"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/repository"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"go.uber.org/zap"
)

// StaffService manages the sales team and keeps a directory of staff names
// for lead validation and per-person reports
type StaffService struct {
	staffRepo repository.StaffRepository
	log       *zap.Logger

	mu   sync.RWMutex
	byID map[uuid.UUID]entity.Staff
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository, log *zap.Logger) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		log:       log,
		byID:      make(map[uuid.UUID]entity.Staff),
	}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	Name string
	Role string
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	ID     uuid.UUID
	Name   *string
	Role   *string
	Active *bool
}

// Load fills the directory from the store
func (s *StaffService) Load(ctx context.Context) error {
	_, err := s.ListStaff(ctx)
	return err
}

// ListStaff returns every staff member ordered by name and refreshes the directory
func (s *StaffService) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.Staff, len(staff))
	for _, m := range staff {
		byID[m.ID] = m
	}
	s.mu.Lock()
	s.byID = byID
	s.mu.Unlock()

	return staff, nil
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
	}

	staff := &entity.Staff{
		Name:   name,
		Role:   strings.TrimSpace(input.Role),
		Active: true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.remember(*staff)
	s.log.Info("Staff member created", zap.String("staff_id", staff.ID.String()), zap.String("name", staff.Name))
	return staff, nil
}

// UpdateStaff renames, re-labels or deactivates a staff member
func (s *StaffService) UpdateStaff(ctx context.Context, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
		}
		staff.Name = name
	}
	if input.Role != nil {
		staff.Role = strings.TrimSpace(*input.Role)
	}
	if input.Active != nil {
		staff.Active = *input.Active
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	s.remember(*staff)
	return staff, nil
}

// Exists reports whether id belongs to a known staff member. Inactive
// members still resolve so historical leads stay valid.
func (s *StaffService) Exists(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// Names returns the display name of every known staff member
func (s *StaffService) Names() analytics.StaffNames {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(analytics.StaffNames, len(s.byID))
	for id, m := range s.byID {
		names[id] = m.Name
	}
	return names
}

func (s *StaffService) remember(staff entity.Staff) {
	s.mu.Lock()
	s.byID[staff.ID] = staff
	s.mu.Unlock()
}
