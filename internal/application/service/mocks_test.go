package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/pkg/advisory"
	"github.com/stretchr/testify/mock"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]entity.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Staff), args.Error(1)
}

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) AnalyzeChatScreenshot(ctx context.Context, img advisory.Image, lead advisory.LeadContext) string {
	args := m.Called(ctx, img, lead)
	return args.String(0)
}

func (m *MockAdvisor) GenerateLeadStrategy(ctx context.Context, lead advisory.LeadContext) string {
	args := m.Called(ctx, lead)
	return args.String(0)
}

func (m *MockAdvisor) SummarizeLead(ctx context.Context, lead advisory.LeadContext) string {
	args := m.Called(ctx, lead)
	return args.String(0)
}

// staffSet is a StaffDirectory over a fixed set of ids
type staffSet map[uuid.UUID]bool

func (s staffSet) Exists(id uuid.UUID) bool {
	return s[id]
}
