package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

type colorNameRepo struct {
	db *sqlx.DB
}

// NewColorNameRepo creates a new PostgreSQL-backed ColorNameRepository.
func NewColorNameRepo(db *sqlx.DB) port.ColorNameRepository {
	return &colorNameRepo{db: db}
}

func (r *colorNameRepo) ListAll(ctx context.Context) ([]domain.ColorName, error) {
	var names []domain.ColorName
	if err := r.db.SelectContext(ctx, &names, "SELECT name, hex FROM color_names"); err != nil {
		return nil, fmt.Errorf("colorNameRepo.ListAll: %w", err)
	}
	return names, nil
}
