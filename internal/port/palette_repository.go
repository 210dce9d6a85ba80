package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"palettehub/internal/domain"
)

// CreatedStats aggregates the catalog entries a user authored.
type CreatedStats struct {
	Palettes   int `db:"palettes" json:"palettes"`
	TotalViews int `db:"total_views" json:"total_views"`
	TotalLikes int `db:"total_likes" json:"total_likes"`
	TotalSaves int `db:"total_saves" json:"total_saves"`
}

// PaletteRepository persists canonical catalog palettes.
type PaletteRepository interface {
	// Create inserts a new palette. A unique-index hit on
	// (source, external_id) returns domain.ErrDuplicateExternalPalette so
	// callers can re-read the row that won the race.
	Create(ctx context.Context, p *domain.Palette) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Palette, error)
	GetByExternalID(ctx context.Context, source domain.PaletteSource, externalID string) (*domain.Palette, error)

	// IncrementViews bumps total_views by one as a single SQL update.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// AdjustSaves applies a delta to total_saves as a single SQL update.
	AdjustSaves(ctx context.Context, id uuid.UUID, delta int) error

	// ListPopular returns public palettes ordered by
	// (total_saves desc, total_likes desc), optionally created after since.
	ListPopular(ctx context.Context, since *time.Time, offset, limit int) ([]domain.Palette, int, error)

	// CreatedByStats aggregates counters across the palettes the user
	// authored.
	CreatedByStats(ctx context.Context, userID uuid.UUID) (CreatedStats, error)

	// SaveCountDrift reports palettes whose total_saves or total_likes
	// disagree with the saved-palette rows backing them.
	SaveCountDrift(ctx context.Context) ([]domain.PaletteDrift, error)
	SetCounters(ctx context.Context, id uuid.UUID, totalSaves, totalLikes int) error
}
