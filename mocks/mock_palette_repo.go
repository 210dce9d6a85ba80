package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// MockPaletteRepo is a mock implementation of port.PaletteRepository.
type MockPaletteRepo struct {
	mock.Mock
}

func (m *MockPaletteRepo) Create(ctx context.Context, p *domain.Palette) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaletteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Palette, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Palette), args.Error(1)
}

func (m *MockPaletteRepo) GetByExternalID(ctx context.Context, source domain.PaletteSource, externalID string) (*domain.Palette, error) {
	args := m.Called(ctx, source, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Palette), args.Error(1)
}

func (m *MockPaletteRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaletteRepo) AdjustSaves(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockPaletteRepo) ListPopular(ctx context.Context, since *time.Time, offset, limit int) ([]domain.Palette, int, error) {
	args := m.Called(ctx, since, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Palette), args.Int(1), args.Error(2)
}

func (m *MockPaletteRepo) SaveCountDrift(ctx context.Context) ([]domain.PaletteDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaletteDrift), args.Error(1)
}

func (m *MockPaletteRepo) SetCounters(ctx context.Context, id uuid.UUID, totalSaves, totalLikes int) error {
	args := m.Called(ctx, id, totalSaves, totalLikes)
	return args.Error(0)
}

func (m *MockPaletteRepo) CreatedByStats(ctx context.Context, userID uuid.UUID) (port.CreatedStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(port.CreatedStats), args.Error(1)
}
