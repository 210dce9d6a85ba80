package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
)

// MockPopularityService is a mock implementation of service.PopularityService.
type MockPopularityService struct {
	mock.Mock
}

func (m *MockPopularityService) ListPopular(ctx context.Context, timeframe domain.Timeframe, offset, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, int, error) {
	args := m.Called(ctx, timeframe, offset, limit, callerID)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AnnotatedPalette), args.Int(1), args.Error(2)
}
