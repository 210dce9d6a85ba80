package port

import (
	"context"

	"github.com/google/uuid"

	"palettehub/internal/domain"
)

// SavedPaletteEntry is a saved-palette row joined with its catalog palette
// and, when assigned, a folder summary.
type SavedPaletteEntry struct {
	Save    domain.SavedPalette `json:"save"`
	Palette domain.Palette      `json:"palette"`
	Folder  *FolderSummary      `json:"folder,omitempty"`
}

// FolderSummary is the folder projection joined into listings.
type FolderSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// SavedPaletteRepository persists per-user saves of catalog palettes.
type SavedPaletteRepository interface {
	// Create inserts a save. A unique-index hit on (user_id, palette_id)
	// returns domain.ErrDuplicateSave.
	Create(ctx context.Context, sp *domain.SavedPalette) error
	GetByID(ctx context.Context, userID, saveID uuid.UUID) (*domain.SavedPalette, error)
	GetByUserAndPalette(ctx context.Context, userID, paletteID uuid.UUID) (*domain.SavedPalette, error)
	Update(ctx context.Context, sp *domain.SavedPalette) error
	Delete(ctx context.Context, userID, saveID uuid.UUID) error

	// ListByUser returns the user's saves newest-first, optionally filtered
	// to one folder, joined with palette and folder summaries.
	ListByUser(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]SavedPaletteEntry, int, error)

	// SavedIDs resolves, in one query, which of the given palettes the user
	// has saved, keyed by palette id with the save id as value.
	SavedIDs(ctx context.Context, userID uuid.UUID, paletteIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)

	// ReassignFolder moves every save of the user from one folder to another
	// and returns the number of rows moved.
	ReassignFolder(ctx context.Context, userID, fromFolderID, toFolderID uuid.UUID) (int, error)

	// SaveCounts returns the user's total saves and how many of them are
	// liked, in one query.
	SaveCounts(ctx context.Context, userID uuid.UUID) (total, liked int, err error)
}
