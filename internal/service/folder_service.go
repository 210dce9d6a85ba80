package service

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

var folderColorRule = validation.Match(regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)).
	Error("must be a hex color like #6366F1")

// CreateFolderInput creates a folder for organizing saved palettes.
type CreateFolderInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Validate checks the input fields.
func (i CreateFolderInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.Description, validation.Length(0, 200)),
		validation.Field(&i.Color, folderColorRule),
	)
}

// UpdateFolderInput is a partial patch of a folder.
type UpdateFolderInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Validate checks the input fields.
func (i UpdateFolderInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(1, 50)),
		validation.Field(&i.Description, validation.Length(0, 200)),
		validation.Field(&i.Color, folderColorRule),
	)
}

// FolderService manages a user's folders. Every user keeps one default
// folder that cannot be renamed or deleted.
type FolderService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error)
	Get(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateFolderInput) (*domain.Folder, error)
	Update(ctx context.Context, userID, folderID uuid.UUID, input UpdateFolderInput) (*domain.Folder, error)
	// Delete removes a folder, moving its saves to the default folder in
	// the same transaction. The default folder itself cannot be deleted.
	Delete(ctx context.Context, userID, folderID uuid.UUID) error
	// ListPalettes returns the saves assigned to one folder, newest-first.
	ListPalettes(ctx context.Context, userID, folderID uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error)
}

type folderService struct {
	folderRepo port.FolderRepository
	savedRepo  port.SavedPaletteRepository
	txManager  port.TxManager
}

// NewFolderService creates a new FolderService implementation.
func NewFolderService(folderRepo port.FolderRepository, savedRepo port.SavedPaletteRepository, txManager port.TxManager) FolderService {
	return &folderService{
		folderRepo: folderRepo,
		savedRepo:  savedRepo,
		txManager:  txManager,
	}
}

func (s *folderService) List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	return s.folderRepo.ListByUser(ctx, userID)
}

func (s *folderService) Get(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	return s.folderRepo.GetByID(ctx, userID, folderID)
}

func (s *folderService) Create(ctx context.Context, userID uuid.UUID, input CreateFolderInput) (*domain.Folder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultFolderColor
	}

	folder := &domain.Folder{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       color,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *folderService) Update(ctx context.Context, userID, folderID uuid.UUID, input UpdateFolderInput) (*domain.Folder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.GetByID(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	// The default folder keeps its name; other patch fields still apply.
	if input.Name != nil && !folder.IsDefault {
		folder.Name = *input.Name
	}
	if input.Description != nil {
		folder.Description = *input.Description
	}
	if input.Color != nil {
		folder.Color = *input.Color
	}

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *folderService) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	folder, err := s.folderRepo.GetByID(ctx, userID, folderID)
	if err != nil {
		return err
	}
	if folder.IsDefault {
		return domain.ErrCannotDeleteDefaultFolder
	}

	def, err := s.folderRepo.GetDefault(ctx, userID)
	if err != nil {
		return err
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		moved, err := s.savedRepo.ReassignFolder(ctx, userID, folderID, def.ID)
		if err != nil {
			return err
		}
		if moved > 0 {
			if err := s.folderRepo.AdjustPaletteCount(ctx, def.ID, moved); err != nil {
				return err
			}
		}
		return s.folderRepo.Delete(ctx, userID, folderID)
	})
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}
	return nil
}

func (s *folderService) ListPalettes(ctx context.Context, userID, folderID uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	if _, err := s.folderRepo.GetByID(ctx, userID, folderID); err != nil {
		return nil, 0, err
	}
	return s.savedRepo.ListByUser(ctx, userID, &folderID, offset, limit)
}
