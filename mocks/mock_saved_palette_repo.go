package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// MockSavedPaletteRepo is a mock implementation of port.SavedPaletteRepository.
type MockSavedPaletteRepo struct {
	mock.Mock
}

func (m *MockSavedPaletteRepo) Create(ctx context.Context, sp *domain.SavedPalette) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSavedPaletteRepo) GetByID(ctx context.Context, userID, saveID uuid.UUID) (*domain.SavedPalette, error) {
	args := m.Called(ctx, userID, saveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPalette), args.Error(1)
}

func (m *MockSavedPaletteRepo) GetByUserAndPalette(ctx context.Context, userID, paletteID uuid.UUID) (*domain.SavedPalette, error) {
	args := m.Called(ctx, userID, paletteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPalette), args.Error(1)
}

func (m *MockSavedPaletteRepo) Update(ctx context.Context, sp *domain.SavedPalette) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSavedPaletteRepo) Delete(ctx context.Context, userID, saveID uuid.UUID) error {
	args := m.Called(ctx, userID, saveID)
	return args.Error(0)
}

func (m *MockSavedPaletteRepo) ListByUser(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	args := m.Called(ctx, userID, folderID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]port.SavedPaletteEntry), args.Int(1), args.Error(2)
}

func (m *MockSavedPaletteRepo) SavedIDs(ctx context.Context, userID uuid.UUID, paletteIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	args := m.Called(ctx, userID, paletteIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]uuid.UUID), args.Error(1)
}

func (m *MockSavedPaletteRepo) ReassignFolder(ctx context.Context, userID, fromFolderID, toFolderID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, fromFolderID, toFolderID)
	return args.Int(0), args.Error(1)
}

func (m *MockSavedPaletteRepo) SaveCounts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}
