package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

const untitledPaletteName = "Untitled Palette"

// CatalogService resolves external search and fetch results into canonical
// catalog entries, deduplicated by (source, external_id).
type CatalogService interface {
	// Search queries the external catalog and find-or-creates a canonical
	// entry per result, annotated with the caller's save state.
	Search(ctx context.Context, query string, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, error)
	// GetByID returns a catalog entry by canonical id, counting one view.
	GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*domain.AnnotatedPalette, error)
	// GetByExternalID returns a catalog entry by external id, syncing it from
	// the provider on first sight, and counts one view.
	GetByExternalID(ctx context.Context, externalID string, callerID *uuid.UUID) (*domain.AnnotatedPalette, error)
	// ResolveExternal find-or-creates the canonical entry for one raw
	// provider palette. A concurrent creator winning the race is not an
	// error; the row it created is returned instead.
	ResolveExternal(ctx context.Context, raw port.RawPalette, createdBy *uuid.UUID) (*domain.Palette, error)
}

type catalogService struct {
	paletteRepo port.PaletteRepository
	savedRepo   port.SavedPaletteRepository
	provider    port.PaletteProvider
	namer       port.ColorNamer
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(
	paletteRepo port.PaletteRepository,
	savedRepo port.SavedPaletteRepository,
	provider port.PaletteProvider,
	namer port.ColorNamer,
) CatalogService {
	return &catalogService{
		paletteRepo: paletteRepo,
		savedRepo:   savedRepo,
		provider:    provider,
		namer:       namer,
	}
}

func (s *catalogService) Search(ctx context.Context, query string, limit int, callerID *uuid.UUID) ([]domain.AnnotatedPalette, error) {
	raws, err := s.provider.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	palettes := make([]domain.Palette, 0, len(raws))
	for _, raw := range raws {
		palette, err := s.ResolveExternal(ctx, raw, nil)
		if err != nil {
			if errors.Is(err, errMalformedEntry) {
				log.Printf("catalogService.Search: skipping malformed entry %q: %v", raw.ID, err)
				continue
			}
			return nil, err
		}
		palettes = append(palettes, *palette)
	}

	annotated, err := annotateSaves(ctx, s.savedRepo, palettes, callerID)
	if err != nil {
		return nil, fmt.Errorf("annotating save state: %w", err)
	}
	return annotated, nil
}

func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*domain.AnnotatedPalette, error) {
	palette, err := s.paletteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.paletteRepo.IncrementViews(ctx, palette.ID); err != nil {
		return nil, err
	}
	palette.TotalViews++
	return s.annotateOne(ctx, palette, callerID)
}

func (s *catalogService) GetByExternalID(ctx context.Context, externalID string, callerID *uuid.UUID) (*domain.AnnotatedPalette, error) {
	palette, err := s.paletteRepo.GetByExternalID(ctx, domain.SourceExternal, externalID)
	if errors.Is(err, domain.ErrPaletteNotFound) {
		raw, fetchErr := s.provider.FetchByID(ctx, externalID)
		if fetchErr != nil {
			if errors.Is(fetchErr, domain.ErrNotFound) {
				return nil, domain.ErrPaletteNotFound
			}
			return nil, fmt.Errorf("fetching palette %q: %w", externalID, fetchErr)
		}
		palette, err = s.ResolveExternal(ctx, *raw, nil)
		if errors.Is(err, errMalformedEntry) {
			log.Printf("catalogService.GetByExternalID: malformed entry %q: %v", externalID, err)
			return nil, domain.ErrUpstreamUnavailable
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.paletteRepo.IncrementViews(ctx, palette.ID); err != nil {
		return nil, err
	}
	palette.TotalViews++
	return s.annotateOne(ctx, palette, callerID)
}

func (s *catalogService) ResolveExternal(ctx context.Context, raw port.RawPalette, createdBy *uuid.UUID) (*domain.Palette, error) {
	existing, err := s.paletteRepo.GetByExternalID(ctx, domain.SourceExternal, raw.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrPaletteNotFound) {
		return nil, err
	}

	palette, err := s.transform(raw, createdBy)
	if err != nil {
		return nil, err
	}

	// An existence check alone cannot guard against a concurrent creator;
	// the unique index on (source, external_id) is the arbiter. Losing the
	// race means the row exists now, so re-read it.
	if err := s.paletteRepo.Create(ctx, palette); err != nil {
		if errors.Is(err, domain.ErrDuplicateExternalPalette) {
			return s.paletteRepo.GetByExternalID(ctx, domain.SourceExternal, raw.ID)
		}
		return nil, err
	}
	return palette, nil
}

// errMalformedEntry marks a provider entry that cannot be canonicalized.
// Search skips such entries rather than failing the whole request.
var errMalformedEntry = errors.New("malformed provider entry")

func (s *catalogService) transform(raw port.RawPalette, createdBy *uuid.UUID) (*domain.Palette, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: missing id", errMalformedEntry)
	}
	if len(raw.Colors) < 2 || len(raw.Colors) > 10 {
		return nil, fmt.Errorf("%w: %d colors", errMalformedEntry, len(raw.Colors))
	}

	colors := make(domain.ColorList, 0, len(raw.Colors))
	for _, hex := range raw.Colors {
		norm, err := domain.NormalizeHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedEntry, err)
		}
		rgb, _ := domain.HexToRGB(norm)
		colors = append(colors, domain.Color{
			Hex:  norm,
			Name: s.namer.NameFor(norm),
			RGB:  rgb,
			HSL:  domain.RGBToHSL(rgb),
		})
	}

	name := strings.TrimSpace(raw.Text)
	if name == "" {
		name = untitledPaletteName
	}
	externalID := raw.ID

	return &domain.Palette{
		Name:        truncate(name, 100),
		Description: truncate(strings.TrimSpace(raw.Description), 500),
		Colors:      colors,
		Tags:        normalizeTags(raw.Tags),
		Source:      domain.SourceExternal,
		ExternalID:  &externalID,
		CreatedBy:   createdBy,
		IsPublic:    true,
	}, nil
}

func (s *catalogService) annotateOne(ctx context.Context, palette *domain.Palette, callerID *uuid.UUID) (*domain.AnnotatedPalette, error) {
	annotated, err := annotateSaves(ctx, s.savedRepo, []domain.Palette{*palette}, callerID)
	if err != nil {
		return nil, fmt.Errorf("annotating save state: %w", err)
	}
	return &annotated[0], nil
}

// truncate caps a string at max runes. Cutting on byte offsets could split
// a multi-byte rune and store invalid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func normalizeTags(tags []string) domain.StringList {
	out := make(domain.StringList, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
