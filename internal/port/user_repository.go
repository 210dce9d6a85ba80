package port

import (
	"context"

	"github.com/google/uuid"

	"palettehub/internal/domain"
)

// UserRepository persists accounts.
type UserRepository interface {
	// Create inserts a user, returning domain.ErrDuplicateEmail or
	// domain.ErrDuplicateUsername on the matching unique index.
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the mutable profile fields.
	Update(ctx context.Context, u *domain.User) error
}
