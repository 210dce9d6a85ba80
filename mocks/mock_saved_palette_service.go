package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/port"
	"palettehub/internal/service"
)

// MockSavedPaletteService is a mock implementation of service.SavedPaletteService.
type MockSavedPaletteService struct {
	mock.Mock
}

func (m *MockSavedPaletteService) SaveExternal(ctx context.Context, userID uuid.UUID, input service.SaveExternalInput) (*service.SaveResult, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}

func (m *MockSavedPaletteService) CreateCustom(ctx context.Context, userID uuid.UUID, input service.CreateCustomInput) (*service.SaveResult, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}

func (m *MockSavedPaletteService) Get(ctx context.Context, userID, saveID uuid.UUID) (*service.SaveResult, error) {
	args := m.Called(ctx, userID, saveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}

func (m *MockSavedPaletteService) Update(ctx context.Context, userID, saveID uuid.UUID, input service.UpdateSaveInput) (*service.SaveResult, error) {
	args := m.Called(ctx, userID, saveID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}

func (m *MockSavedPaletteService) Unsave(ctx context.Context, userID, saveID uuid.UUID) error {
	args := m.Called(ctx, userID, saveID)
	return args.Error(0)
}

func (m *MockSavedPaletteService) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	args := m.Called(ctx, userID, folderID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]port.SavedPaletteEntry), args.Int(1), args.Error(2)
}
