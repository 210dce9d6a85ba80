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

type savedPaletteRepo struct {
	db *sqlx.DB
}

// NewSavedPaletteRepo creates a new PostgreSQL-backed SavedPaletteRepository.
func NewSavedPaletteRepo(db *sqlx.DB) port.SavedPaletteRepository {
	return &savedPaletteRepo{db: db}
}

func (r *savedPaletteRepo) Create(ctx context.Context, sp *domain.SavedPalette) error {
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	now := time.Now().UTC()
	if sp.SavedAt.IsZero() {
		sp.SavedAt = now
	}
	sp.CreatedAt = now
	sp.UpdatedAt = now

	query := `INSERT INTO user_palettes (id, user_id, palette_id, folder_id, personal_notes,
		personal_tags, is_liked, saved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := q(ctx, r.db).ExecContext(ctx, query,
		sp.ID, sp.UserID, sp.PaletteID, sp.FolderID, sp.PersonalNotes,
		sp.PersonalTags, sp.IsLiked, sp.SavedAt, sp.CreatedAt, sp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSave
		}
		return fmt.Errorf("savedPaletteRepo.Create: %w", err)
	}
	return nil
}

func (r *savedPaletteRepo) GetByID(ctx context.Context, userID, saveID uuid.UUID) (*domain.SavedPalette, error) {
	var sp domain.SavedPalette
	err := q(ctx, r.db).GetContext(ctx, &sp,
		"SELECT * FROM user_palettes WHERE id = $1 AND user_id = $2", saveID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("savedPaletteRepo.GetByID: %w", err)
	}
	return &sp, nil
}

func (r *savedPaletteRepo) GetByUserAndPalette(ctx context.Context, userID, paletteID uuid.UUID) (*domain.SavedPalette, error) {
	var sp domain.SavedPalette
	err := q(ctx, r.db).GetContext(ctx, &sp,
		"SELECT * FROM user_palettes WHERE user_id = $1 AND palette_id = $2", userID, paletteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("savedPaletteRepo.GetByUserAndPalette: %w", err)
	}
	return &sp, nil
}

func (r *savedPaletteRepo) Update(ctx context.Context, sp *domain.SavedPalette) error {
	sp.UpdatedAt = time.Now().UTC()
	result, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE user_palettes SET folder_id = $1, personal_notes = $2, personal_tags = $3,
		 is_liked = $4, updated_at = $5
		 WHERE id = $6 AND user_id = $7`,
		sp.FolderID, sp.PersonalNotes, sp.PersonalTags, sp.IsLiked, sp.UpdatedAt,
		sp.ID, sp.UserID)
	if err != nil {
		return fmt.Errorf("savedPaletteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}

func (r *savedPaletteRepo) Delete(ctx context.Context, userID, saveID uuid.UUID) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"DELETE FROM user_palettes WHERE id = $1 AND user_id = $2", saveID, userID)
	if err != nil {
		return fmt.Errorf("savedPaletteRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}

// savedPaletteRow flattens the save/palette/folder join for sqlx scanning.
type savedPaletteRow struct {
	domain.SavedPalette
	PaletteName        string               `db:"palette_name"`
	PaletteDescription string               `db:"palette_description"`
	PaletteColors      domain.ColorList     `db:"palette_colors"`
	PaletteTags        domain.StringList    `db:"palette_tags"`
	PaletteSource      domain.PaletteSource `db:"palette_source"`
	PaletteExternalID  *string              `db:"palette_external_id"`
	PaletteCreatedBy   *uuid.UUID           `db:"palette_created_by"`
	PaletteIsPublic    bool                 `db:"palette_is_public"`
	PaletteTotalSaves  int                  `db:"palette_total_saves"`
	PaletteTotalLikes  int                  `db:"palette_total_likes"`
	PaletteTotalViews  int                  `db:"palette_total_views"`
	PaletteCreatedAt   time.Time            `db:"palette_created_at"`
	FolderName         *string              `db:"folder_name"`
	FolderColor        *string              `db:"folder_color"`
}

const listByUserSelect = `SELECT up.*,
	p.name AS palette_name, p.description AS palette_description,
	p.colors AS palette_colors, p.tags AS palette_tags, p.source AS palette_source,
	p.external_id AS palette_external_id, p.created_by AS palette_created_by,
	p.is_public AS palette_is_public, p.total_saves AS palette_total_saves,
	p.total_likes AS palette_total_likes, p.total_views AS palette_total_views,
	p.created_at AS palette_created_at,
	f.name AS folder_name, f.color AS folder_color
FROM user_palettes up
INNER JOIN palettes p ON p.id = up.palette_id
LEFT JOIN folders f ON f.id = up.folder_id`

func (r *savedPaletteRepo) ListByUser(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	where := "up.user_id = $1"
	args := []interface{}{userID}
	if folderID != nil {
		where += " AND up.folder_id = $2"
		args = append(args, *folderID)
	}

	var total int
	err := q(ctx, r.db).GetContext(ctx, &total,
		"SELECT COUNT(*) FROM user_palettes up WHERE "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("savedPaletteRepo.ListByUser count: %w", err)
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY up.saved_at DESC LIMIT $%d OFFSET $%d",
		listByUserSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var rows []savedPaletteRow
	if err := q(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("savedPaletteRepo.ListByUser: %w", err)
	}

	entries := make([]port.SavedPaletteEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntry())
	}
	return entries, total, nil
}

func (row savedPaletteRow) toEntry() port.SavedPaletteEntry {
	entry := port.SavedPaletteEntry{
		Save: row.SavedPalette,
		Palette: domain.Palette{
			ID:          row.PaletteID,
			Name:        row.PaletteName,
			Description: row.PaletteDescription,
			Colors:      row.PaletteColors,
			Tags:        row.PaletteTags,
			Source:      row.PaletteSource,
			ExternalID:  row.PaletteExternalID,
			CreatedBy:   row.PaletteCreatedBy,
			IsPublic:    row.PaletteIsPublic,
			TotalSaves:  row.PaletteTotalSaves,
			TotalLikes:  row.PaletteTotalLikes,
			TotalViews:  row.PaletteTotalViews,
			CreatedAt:   row.PaletteCreatedAt,
		},
	}
	if row.FolderID != nil && row.FolderName != nil {
		entry.Folder = &port.FolderSummary{
			ID:    *row.FolderID,
			Name:  *row.FolderName,
			Color: *row.FolderColor,
		}
	}
	return entry
}

func (r *savedPaletteRepo) SavedIDs(ctx context.Context, userID uuid.UUID, paletteIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	result := make(map[uuid.UUID]uuid.UUID, len(paletteIDs))
	if len(paletteIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(
		"SELECT id, palette_id FROM user_palettes WHERE user_id = ? AND palette_id IN (?)",
		userID, paletteIDs)
	if err != nil {
		return nil, fmt.Errorf("savedPaletteRepo.SavedIDs: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []struct {
		ID        uuid.UUID `db:"id"`
		PaletteID uuid.UUID `db:"palette_id"`
	}
	if err := q(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("savedPaletteRepo.SavedIDs: %w", err)
	}
	for _, row := range rows {
		result[row.PaletteID] = row.ID
	}
	return result, nil
}

func (r *savedPaletteRepo) ReassignFolder(ctx context.Context, userID, fromFolderID, toFolderID uuid.UUID) (int, error) {
	result, err := q(ctx, r.db).ExecContext(ctx,
		`UPDATE user_palettes SET folder_id = $1, updated_at = $2
		 WHERE user_id = $3 AND folder_id = $4`,
		toFolderID, time.Now().UTC(), userID, fromFolderID)
	if err != nil {
		return 0, fmt.Errorf("savedPaletteRepo.ReassignFolder: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("savedPaletteRepo.ReassignFolder: %w", err)
	}
	return int(rows), nil
}

func (r *savedPaletteRepo) SaveCounts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	var counts struct {
		Total int `db:"total"`
		Liked int `db:"liked"`
	}
	err := q(ctx, r.db).GetContext(ctx, &counts,
		`SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE is_liked) AS liked
		 FROM user_palettes WHERE user_id = $1`, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("savedPaletteRepo.SaveCounts: %w", err)
	}
	return counts.Total, counts.Liked, nil
}
