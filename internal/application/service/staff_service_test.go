package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaffService_LoadBuildsDirectory(t *testing.T) {
	repo := new(MockStaffRepository)
	ana := entity.Staff{ID: uuid.New(), Name: "Ana", Active: true}
	bruno := entity.Staff{ID: uuid.New(), Name: "Bruno", Active: false}
	repo.On("List", mock.Anything).Return([]entity.Staff{ana, bruno}, nil).Once()
	svc := NewStaffService(repo, zap.NewNop())

	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.Exists(ana.ID))
	assert.True(t, svc.Exists(bruno.ID))
	assert.False(t, svc.Exists(uuid.New()))
	assert.Equal(t, "Bruno", svc.Names()[bruno.ID])
}

func TestStaffService_LoadError(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("down")).Once()
	svc := NewStaffService(repo, zap.NewNop())

	assert.Error(t, svc.Load(context.Background()))
	assert.Empty(t, svc.Names())
}

func TestStaffService_CreateStaff(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Staff")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Staff).ID = uuid.New()
	}).Return(nil).Once()
	svc := NewStaffService(repo, zap.NewNop())

	staff, err := svc.CreateStaff(context.Background(), &CreateStaffInput{Name: "  Carla ", Role: "closer"})

	require.NoError(t, err)
	assert.Equal(t, "Carla", staff.Name)
	assert.True(t, staff.Active)
	assert.True(t, svc.Exists(staff.ID))
}

func TestStaffService_CreateStaffRequiresName(t *testing.T) {
	svc := NewStaffService(new(MockStaffRepository), zap.NewNop())

	_, err := svc.CreateStaff(context.Background(), &CreateStaffInput{Name: " "})

	assert.ErrorIs(t, err, &apperror.AppError{Kind: apperror.KindValidation})
}

func TestStaffService_UpdateStaff(t *testing.T) {
	repo := new(MockStaffRepository)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&entity.Staff{ID: id, Name: "Ana", Active: true}, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	svc := NewStaffService(repo, zap.NewNop())

	name := "Ana Maria"
	inactive := false
	staff, err := svc.UpdateStaff(context.Background(), &UpdateStaffInput{ID: id, Name: &name, Active: &inactive})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", staff.Name)
	assert.False(t, staff.Active)
	assert.Equal(t, "Ana Maria", svc.Names()[id])
}

func TestStaffService_UpdateStaffNotFound(t *testing.T) {
	repo := new(MockStaffRepository)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil).Once()
	svc := NewStaffService(repo, zap.NewNop())

	_, err := svc.UpdateStaff(context.Background(), &UpdateStaffInput{ID: id})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
