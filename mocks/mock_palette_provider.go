package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"palettehub/internal/port"
)

// MockPaletteProvider is a mock implementation of port.PaletteProvider.
type MockPaletteProvider struct {
	mock.Mock
}

func (m *MockPaletteProvider) Search(ctx context.Context, query string, limit int) ([]port.RawPalette, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.RawPalette), args.Error(1)
}

func (m *MockPaletteProvider) FetchByID(ctx context.Context, externalID string) (*port.RawPalette, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.RawPalette), args.Error(1)
}
