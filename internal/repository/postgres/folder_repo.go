package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

type folderRepo struct {
	db *sqlx.DB
}

// NewFolderRepo creates a new PostgreSQL-backed FolderRepository.
func NewFolderRepo(db *sqlx.DB) port.FolderRepository {
	return &folderRepo{db: db}
}

func (r *folderRepo) Create(ctx context.Context, f *domain.Folder) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `INSERT INTO folders (id, user_id, name, description, color, is_default,
		palette_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := q(ctx, r.db).ExecContext(ctx, query,
		f.ID, f.UserID, f.Name, f.Description, f.Color, f.IsDefault,
		f.PaletteCount, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateFolderName
		}
		return fmt.Errorf("folderRepo.Create: %w", err)
	}
	return nil
}

func (r *folderRepo) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	var f domain.Folder
	err := q(ctx, r.db).GetContext(ctx, &f,
		"SELECT * FROM folders WHERE id = $1 AND user_id = $2", folderID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFolderNotFound
		}
		return nil, fmt.Errorf("folderRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *folderRepo) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Folder, error) {
	var f domain.Folder
	err := q(ctx, r.db).GetContext(ctx, &f,
		"SELECT * FROM folders WHERE user_id = $1 AND is_default = TRUE", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDefaultFolderAbsent
		}
		return nil, fmt.Errorf("folderRepo.GetDefault: %w", err)
	}
	return &f, nil
}

func (r *folderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	var folders []domain.Folder
	err := q(ctx, r.db).SelectContext(ctx, &folders,
		"SELECT * FROM folders WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("folderRepo.ListByUser: %w", err)
	}
	return folders, nil
}

func (r *folderRepo) Update(ctx context.Context, f *domain.Folder) error {
	f.UpdatedAt = time.Now().UTC()
	result, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE folders SET name = $1, description = $2, color = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		f.Name, f.Description, f.Color, f.UpdatedAt, f.ID, f.UserID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateFolderName
		}
		return fmt.Errorf("folderRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

func (r *folderRepo) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"DELETE FROM folders WHERE id = $1 AND user_id = $2", folderID, userID)
	if err != nil {
		return fmt.Errorf("folderRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

func (r *folderRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := q(ctx, r.db).GetContext(ctx, &count,
		"SELECT COUNT(*) FROM folders WHERE user_id = $1", userID)
	if err != nil {
		return 0, fmt.Errorf("folderRepo.CountByUser: %w", err)
	}
	return count, nil
}

func (r *folderRepo) AdjustPaletteCount(ctx context.Context, folderID uuid.UUID, delta int) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"UPDATE folders SET palette_count = GREATEST(palette_count + $1, 0), updated_at = $2 WHERE id = $3",
		delta, time.Now().UTC(), folderID)
	if err != nil {
		return fmt.Errorf("folderRepo.AdjustPaletteCount: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

func (r *folderRepo) SetPaletteCount(ctx context.Context, folderID uuid.UUID, count int) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"UPDATE folders SET palette_count = $1, updated_at = $2 WHERE id = $3",
		count, time.Now().UTC(), folderID)
	if err != nil {
		return fmt.Errorf("folderRepo.SetPaletteCount: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

const countDriftQuery = `SELECT f.id AS folder_id, f.user_id,
	f.palette_count AS stored_count, COUNT(up.id) AS actual_count
FROM folders f
LEFT JOIN user_palettes up ON up.folder_id = f.id
GROUP BY f.id
HAVING f.palette_count <> COUNT(up.id)`

func (r *folderRepo) CountDrift(ctx context.Context) ([]domain.FolderDrift, error) {
	var drift []domain.FolderDrift
	if err := q(ctx, r.db).SelectContext(ctx, &drift, countDriftQuery); err != nil {
		return nil, fmt.Errorf("folderRepo.CountDrift: %w", err)
	}
	return drift, nil
}
