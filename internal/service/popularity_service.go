package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// PopularityService ranks public catalog palettes by save counts.
type PopularityService interface {
	// ListPopular returns public palettes ordered by total_saves then
	// total_likes, restricted to the given timeframe, annotated with the
	// caller's save state.
	ListPopular(ctx context.Context, timeframe domain.Timeframe, offset, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, int, error)
}

type popularityService struct {
	paletteRepo port.PaletteRepository
	savedRepo   port.SavedPaletteRepository
	now         func() time.Time
}

// NewPopularityService creates a new PopularityService implementation.
func NewPopularityService(paletteRepo port.PaletteRepository, savedRepo port.SavedPaletteRepository) PopularityService {
	return &popularityService{
		paletteRepo: paletteRepo,
		savedRepo:   savedRepo,
		now:         time.Now,
	}
}

func (s *popularityService) ListPopular(ctx context.Context, timeframe domain.Timeframe, offset, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, int, error) {
	var since *time.Time
	switch timeframe {
	case domain.TimeframeWeek:
		t := s.now().AddDate(0, 0, -7)
		since = &t
	case domain.TimeframeMonth:
		t := s.now().AddDate(0, -1, 0)
		since = &t
	}

	palettes, total, err := s.paletteRepo.ListPopular(ctx, since, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	annotated, err := annotateSaves(ctx, s.savedRepo, palettes, callerID)
	if err != nil {
		return nil, 0, err
	}
	return annotated, total, nil
}

// annotateSaves marks which palettes the caller has saved, in one batched
// lookup.
func annotateSaves(ctx context.Context, savedRepo port.SavedPaletteRepository, palettes []domain.Palette, callerID *uuid.UUID) ([]domain.AnnotatedPalette, error) {
	annotated := make([]domain.AnnotatedPalette, 0, len(palettes))

	var saved map[uuid.UUID]uuid.UUID
	if callerID != nil && len(palettes) > 0 {
		ids := make([]uuid.UUID, 0, len(palettes))
		for _, p := range palettes {
			ids = append(ids, p.ID)
		}
		var err error
		saved, err = savedRepo.SavedIDs(ctx, *callerID, ids)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range palettes {
		entry := domain.AnnotatedPalette{Palette: p}
		if saveID, ok := saved[p.ID]; ok {
			id := saveID
			entry.IsSaved = true
			entry.SavedPaletteID = &id
		}
		annotated = append(annotated, entry)
	}
	return annotated, nil
}
