package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
)

// MockFolderRepo is a mock implementation of port.FolderRepository.
type MockFolderRepo struct {
	mock.Mock
}

func (m *MockFolderRepo) Create(ctx context.Context, f *domain.Folder) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFolderRepo) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepo) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderRepo) Update(ctx context.Context, f *domain.Folder) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFolderRepo) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	args := m.Called(ctx, userID, folderID)
	return args.Error(0)
}

func (m *MockFolderRepo) AdjustPaletteCount(ctx context.Context, folderID uuid.UUID, delta int) error {
	args := m.Called(ctx, folderID, delta)
	return args.Error(0)
}

func (m *MockFolderRepo) SetPaletteCount(ctx context.Context, folderID uuid.UUID, count int) error {
	args := m.Called(ctx, folderID, count)
	return args.Error(0)
}

func (m *MockFolderRepo) CountDrift(ctx context.Context) ([]domain.FolderDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FolderDrift), args.Error(1)
}

func (m *MockFolderRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
