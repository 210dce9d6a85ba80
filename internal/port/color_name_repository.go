package port

import (
	"context"

	"palettehub/internal/domain"
)

// ColorNameRepository reads the seeded hex-to-name lookup table.
type ColorNameRepository interface {
	ListAll(ctx context.Context) ([]domain.ColorName, error)
}
