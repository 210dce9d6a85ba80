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

type paletteRepo struct {
	db *sqlx.DB
}

// NewPaletteRepo creates a new PostgreSQL-backed PaletteRepository.
func NewPaletteRepo(db *sqlx.DB) port.PaletteRepository {
	return &paletteRepo{db: db}
}

func (r *paletteRepo) Create(ctx context.Context, p *domain.Palette) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO palettes (id, name, description, colors, tags, source, external_id,
		created_by, is_public, total_saves, total_likes, total_views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := q(ctx, r.db).ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Colors, p.Tags, p.Source, p.ExternalID,
		p.CreatedBy, p.IsPublic, p.TotalSaves, p.TotalLikes, p.TotalViews,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateExternalPalette
		}
		return fmt.Errorf("paletteRepo.Create: %w", err)
	}
	return nil
}

func (r *paletteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Palette, error) {
	var p domain.Palette
	err := q(ctx, r.db).GetContext(ctx, &p, "SELECT * FROM palettes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaletteNotFound
		}
		return nil, fmt.Errorf("paletteRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *paletteRepo) GetByExternalID(ctx context.Context, source domain.PaletteSource, externalID string) (*domain.Palette, error) {
	var p domain.Palette
	err := q(ctx, r.db).GetContext(ctx, &p,
		"SELECT * FROM palettes WHERE source = $1 AND external_id = $2", source, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaletteNotFound
		}
		return nil, fmt.Errorf("paletteRepo.GetByExternalID: %w", err)
	}
	return &p, nil
}

func (r *paletteRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"UPDATE palettes SET total_views = total_views + 1, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("paletteRepo.IncrementViews: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPaletteNotFound
	}
	return nil
}

func (r *paletteRepo) AdjustSaves(ctx context.Context, id uuid.UUID, delta int) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"UPDATE palettes SET total_saves = GREATEST(total_saves + $1, 0), updated_at = $2 WHERE id = $3",
		delta, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("paletteRepo.AdjustSaves: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPaletteNotFound
	}
	return nil
}

func (r *paletteRepo) ListPopular(ctx context.Context, since *time.Time, offset, limit int) ([]domain.Palette, int, error) {
	where := "is_public = TRUE"
	args := []interface{}{}
	if since != nil {
		where += " AND created_at >= $1"
		args = append(args, *since)
	}

	var total int
	err := q(ctx, r.db).GetContext(ctx, &total,
		"SELECT COUNT(*) FROM palettes WHERE "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("paletteRepo.ListPopular count: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT * FROM palettes WHERE %s
		 ORDER BY total_saves DESC, total_likes DESC, created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var palettes []domain.Palette
	if err := q(ctx, r.db).SelectContext(ctx, &palettes, query, args...); err != nil {
		return nil, 0, fmt.Errorf("paletteRepo.ListPopular: %w", err)
	}
	return palettes, total, nil
}

const saveCountDriftQuery = `SELECT p.id AS palette_id,
	p.total_saves AS stored_saves,
	COUNT(up.id) AS actual_saves,
	p.total_likes AS stored_likes,
	COUNT(up.id) FILTER (WHERE up.is_liked) AS actual_likes
FROM palettes p
LEFT JOIN user_palettes up ON up.palette_id = p.id
GROUP BY p.id
HAVING p.total_saves <> COUNT(up.id)
    OR p.total_likes <> COUNT(up.id) FILTER (WHERE up.is_liked)`

func (r *paletteRepo) CreatedByStats(ctx context.Context, userID uuid.UUID) (port.CreatedStats, error) {
	var stats port.CreatedStats
	err := q(ctx, r.db).GetContext(ctx, &stats,
		`SELECT COUNT(*) AS palettes,
		        COALESCE(SUM(total_views), 0) AS total_views,
		        COALESCE(SUM(total_likes), 0) AS total_likes,
		        COALESCE(SUM(total_saves), 0) AS total_saves
		 FROM palettes WHERE created_by = $1`, userID)
	if err != nil {
		return port.CreatedStats{}, fmt.Errorf("paletteRepo.CreatedByStats: %w", err)
	}
	return stats, nil
}

func (r *paletteRepo) SaveCountDrift(ctx context.Context) ([]domain.PaletteDrift, error) {
	var drift []domain.PaletteDrift
	if err := q(ctx, r.db).SelectContext(ctx, &drift, saveCountDriftQuery); err != nil {
		return nil, fmt.Errorf("paletteRepo.SaveCountDrift: %w", err)
	}
	return drift, nil
}

func (r *paletteRepo) SetCounters(ctx context.Context, id uuid.UUID, totalSaves, totalLikes int) error {
	result, err := q(ctx, r.db).ExecContext(ctx,
		"UPDATE palettes SET total_saves = $1, total_likes = $2, updated_at = $3 WHERE id = $4",
		totalSaves, totalLikes, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("paletteRepo.SetCounters: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPaletteNotFound
	}
	return nil
}
