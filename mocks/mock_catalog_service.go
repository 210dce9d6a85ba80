package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Search(ctx context.Context, query string, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, error) {
	args := m.Called(ctx, query, limit, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnnotatedPalette), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*domain.AnnotatedPalette, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnotatedPalette), args.Error(1)
}

func (m *MockCatalogService) GetByExternalID(ctx context.Context, externalID string, callerID *uuid.UUID) (*domain.AnnotatedPalette, error) {
	args := m.Called(ctx, externalID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnotatedPalette), args.Error(1)
}

func (m *MockCatalogService) ResolveExternal(ctx context.Context, raw port.RawPalette, createdBy *uuid.UUID) (*domain.Palette, error) {
	args := m.Called(ctx, raw, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Palette), args.Error(1)
}
