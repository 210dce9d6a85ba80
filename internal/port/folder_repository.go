package port

import (
	"context"

	"github.com/google/uuid"

	"palettehub/internal/domain"
)

// FolderRepository persists user folders and their maintained counts.
type FolderRepository interface {
	// Create inserts a folder. A unique-index hit on (user_id, name)
	// returns domain.ErrDuplicateFolderName.
	Create(ctx context.Context, f *domain.Folder) error
	GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Folder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error)
	Update(ctx context.Context, f *domain.Folder) error
	Delete(ctx context.Context, userID, folderID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AdjustPaletteCount applies a delta to palette_count as a single SQL
	// update, never dropping below zero.
	AdjustPaletteCount(ctx context.Context, folderID uuid.UUID, delta int) error
	SetPaletteCount(ctx context.Context, folderID uuid.UUID, count int) error

	// CountDrift reports folders whose palette_count disagrees with the
	// saved-palette rows pointing at them.
	CountDrift(ctx context.Context) ([]domain.FolderDrift, error)
}
