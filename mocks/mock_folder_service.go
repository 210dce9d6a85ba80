package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
	"palettehub/internal/service"
)

// MockFolderService is a mock implementation of service.FolderService.
type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderService) Get(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) Create(ctx context.Context, userID uuid.UUID, input service.CreateFolderInput) (*domain.Folder, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) Update(ctx context.Context, userID, folderID uuid.UUID, input service.UpdateFolderInput) (*domain.Folder, error) {
	args := m.Called(ctx, userID, folderID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	args := m.Called(ctx, userID, folderID)
	return args.Error(0)
}

func (m *MockFolderService) ListPalettes(ctx context.Context, userID, folderID uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	args := m.Called(ctx, userID, folderID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]port.SavedPaletteEntry), args.Int(1), args.Error(2)
}
