package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

var hexColorRule = validation.Match(regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)).
	Error("must be a 6-digit hex color")

// SaveExternalInput saves a palette from the external catalog into the
// user's collection.
type SaveExternalInput struct {
	ExternalID    string     `json:"externalId"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Colors        []string   `json:"colors"`
	Tags          []string   `json:"tags"`
	FolderID      *uuid.UUID `json:"folderId"`
	PersonalNotes string     `json:"personalNotes"`
	PersonalTags  []string   `json:"personalTags"`
}

// Validate checks the input fields.
func (i SaveExternalInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ExternalID, validation.Required),
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Description, validation.Length(0, 500)),
		validation.Field(&i.Colors, validation.Required, validation.Length(2, 10),
			validation.Each(hexColorRule)),
		validation.Field(&i.PersonalNotes, validation.Length(0, 500)),
	)
}

// CreateCustomInput creates a user-authored palette and saves it in one
// step.
type CreateCustomInput struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Colors        []string   `json:"colors"`
	Tags          []string   `json:"tags"`
	FolderID      *uuid.UUID `json:"folderId"`
	PersonalNotes string     `json:"personalNotes"`
	PersonalTags  []string   `json:"personalTags"`
}

// Validate checks the input fields.
func (i CreateCustomInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Description, validation.Length(0, 500)),
		validation.Field(&i.Colors, validation.Required, validation.Length(2, 10),
			validation.Each(hexColorRule)),
		validation.Field(&i.PersonalNotes, validation.Length(0, 500)),
	)
}

// UpdateSaveInput is a partial patch of a saved palette. SetFolder
// distinguishes "move to folder or root" from "leave the folder alone".
type UpdateSaveInput struct {
	FolderID      *uuid.UUID
	SetFolder     bool
	PersonalNotes *string
	PersonalTags  []string
	IsLiked       *bool
}

// Validate checks the input fields.
func (i UpdateSaveInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PersonalNotes, validation.Length(0, 500)),
	)
}

// SaveResult is a save together with its catalog palette. Created reports
// whether this call created the save or found it already present.
type SaveResult struct {
	Save    domain.SavedPalette `json:"save"`
	Palette domain.Palette      `json:"palette"`
	Created bool                `json:"created"`
}

// SavedPaletteService manages a user's collection of saved palettes.
type SavedPaletteService interface {
	// SaveExternal saves an external catalog palette for the user,
	// resolving the canonical entry first. Saving an already-saved palette
	// returns the existing save with Created=false.
	SaveExternal(ctx context.Context, userID uuid.UUID, input SaveExternalInput) (*SaveResult, error)
	// CreateCustom creates a private user-authored palette and saves it.
	CreateCustom(ctx context.Context, userID uuid.UUID, input CreateCustomInput) (*SaveResult, error)
	// Get returns one save with its palette, counting a view.
	Get(ctx context.Context, userID, saveID uuid.UUID) (*SaveResult, error)
	// Update applies a partial patch to a save. Moving between folders
	// transfers the folder counts in the same transaction.
	Update(ctx context.Context, userID, saveID uuid.UUID, input UpdateSaveInput) (*SaveResult, error)
	// Unsave removes a save and rolls back the counters it contributed.
	Unsave(ctx context.Context, userID, saveID uuid.UUID) error
	// List returns the user's saves newest-first, optionally filtered to a
	// folder the user owns.
	List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error)
}

type savedPaletteService struct {
	paletteRepo port.PaletteRepository
	savedRepo   port.SavedPaletteRepository
	folderRepo  port.FolderRepository
	catalog     CatalogService
	namer       port.ColorNamer
	txManager   port.TxManager
}

// NewSavedPaletteService creates a new SavedPaletteService implementation.
func NewSavedPaletteService(
	paletteRepo port.PaletteRepository,
	savedRepo port.SavedPaletteRepository,
	folderRepo port.FolderRepository,
	catalog CatalogService,
	namer port.ColorNamer,
	txManager port.TxManager,
) SavedPaletteService {
	return &savedPaletteService{
		paletteRepo: paletteRepo,
		savedRepo:   savedRepo,
		folderRepo:  folderRepo,
		catalog:     catalog,
		namer:       namer,
		txManager:   txManager,
	}
}

func (s *savedPaletteService) SaveExternal(ctx context.Context, userID uuid.UUID, input SaveExternalInput) (*SaveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.FolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, userID, *input.FolderID); err != nil {
			return nil, err
		}
	}

	raw := port.RawPalette{
		ID:          input.ExternalID,
		Text:        input.Name,
		Description: input.Description,
		Colors:      input.Colors,
		Tags:        input.Tags,
	}
	palette, err := s.catalog.ResolveExternal(ctx, raw, &userID)
	if err != nil {
		return nil, err
	}

	return s.save(ctx, userID, palette, input.FolderID, input.PersonalNotes, input.PersonalTags)
}

func (s *savedPaletteService) CreateCustom(ctx context.Context, userID uuid.UUID, input CreateCustomInput) (*SaveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.FolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, userID, *input.FolderID); err != nil {
			return nil, err
		}
	}

	colors := make(domain.ColorList, 0, len(input.Colors))
	for _, hex := range input.Colors {
		norm, err := domain.NormalizeHex(hex)
		if err != nil {
			return nil, err
		}
		rgb, _ := domain.HexToRGB(norm)
		colors = append(colors, domain.Color{
			Hex:  norm,
			Name: s.namer.NameFor(norm),
			RGB:  rgb,
			HSL:  domain.RGBToHSL(rgb),
		})
	}

	palette := &domain.Palette{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Colors:      colors,
		Tags:        normalizeTags(input.Tags),
		Source:      domain.SourceUser,
		CreatedBy:   &userID,
		IsPublic:    false,
	}
	if err := s.paletteRepo.Create(ctx, palette); err != nil {
		return nil, err
	}

	return s.save(ctx, userID, palette, input.FolderID, input.PersonalNotes, input.PersonalTags)
}

// save inserts the save row and bumps folder and palette counters in one
// transaction. An existing (user, palette) save wins over the insert.
func (s *savedPaletteService) save(ctx context.Context, userID uuid.UUID, palette *domain.Palette, folderID *uuid.UUID, notes string, personalTags []string) (*SaveResult, error) {
	sp := &domain.SavedPalette{
		UserID:        userID,
		PaletteID:     palette.ID,
		FolderID:      folderID,
		PersonalNotes: notes,
		PersonalTags:  normalizeTags(personalTags),
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.savedRepo.Create(ctx, sp); err != nil {
			return err
		}
		if folderID != nil {
			if err := s.folderRepo.AdjustPaletteCount(ctx, *folderID, 1); err != nil {
				return err
			}
		}
		return s.paletteRepo.AdjustSaves(ctx, palette.ID, 1)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSave) {
			existing, getErr := s.savedRepo.GetByUserAndPalette(ctx, userID, palette.ID)
			if getErr != nil {
				return nil, getErr
			}
			return &SaveResult{Save: *existing, Palette: *palette, Created: false}, nil
		}
		return nil, fmt.Errorf("saving palette: %w", err)
	}

	palette.TotalSaves++
	return &SaveResult{Save: *sp, Palette: *palette, Created: true}, nil
}

func (s *savedPaletteService) Get(ctx context.Context, userID, saveID uuid.UUID) (*SaveResult, error) {
	sp, err := s.savedRepo.GetByID(ctx, userID, saveID)
	if err != nil {
		return nil, err
	}
	palette, err := s.paletteRepo.GetByID(ctx, sp.PaletteID)
	if err != nil {
		return nil, err
	}
	if err := s.paletteRepo.IncrementViews(ctx, palette.ID); err != nil {
		return nil, err
	}
	palette.TotalViews++
	return &SaveResult{Save: *sp, Palette: *palette}, nil
}

func (s *savedPaletteService) Update(ctx context.Context, userID, saveID uuid.UUID, input UpdateSaveInput) (*SaveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sp, err := s.savedRepo.GetByID(ctx, userID, saveID)
	if err != nil {
		return nil, err
	}

	if input.PersonalNotes != nil {
		sp.PersonalNotes = *input.PersonalNotes
	}
	if input.PersonalTags != nil {
		sp.PersonalTags = normalizeTags(input.PersonalTags)
	}
	if input.IsLiked != nil {
		sp.IsLiked = *input.IsLiked
	}

	oldFolder := sp.FolderID
	folderChanged := input.SetFolder && !sameFolder(oldFolder, input.FolderID)
	if folderChanged {
		if input.FolderID != nil {
			if _, err := s.folderRepo.GetByID(ctx, userID, *input.FolderID); err != nil {
				return nil, err
			}
		}
		sp.FolderID = input.FolderID
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.savedRepo.Update(ctx, sp); err != nil {
			return err
		}
		if !folderChanged {
			return nil
		}
		if oldFolder != nil {
			if err := s.folderRepo.AdjustPaletteCount(ctx, *oldFolder, -1); err != nil {
				return err
			}
		}
		if sp.FolderID != nil {
			return s.folderRepo.AdjustPaletteCount(ctx, *sp.FolderID, 1)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating save: %w", err)
	}

	palette, err := s.paletteRepo.GetByID(ctx, sp.PaletteID)
	if err != nil {
		return nil, err
	}
	return &SaveResult{Save: *sp, Palette: *palette}, nil
}

func (s *savedPaletteService) Unsave(ctx context.Context, userID, saveID uuid.UUID) error {
	// The read and the delete share a transaction so the folder decrement
	// matches the row's folder at deletion time.
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		sp, err := s.savedRepo.GetByID(ctx, userID, saveID)
		if err != nil {
			return err
		}
		if err := s.savedRepo.Delete(ctx, userID, saveID); err != nil {
			return err
		}
		if sp.FolderID != nil {
			if err := s.folderRepo.AdjustPaletteCount(ctx, *sp.FolderID, -1); err != nil {
				return err
			}
		}
		return s.paletteRepo.AdjustSaves(ctx, sp.PaletteID, -1)
	})
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			return err
		}
		return fmt.Errorf("removing save: %w", err)
	}
	return nil
}

func (s *savedPaletteService) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, offset, limit int) ([]port.SavedPaletteEntry, int, error) {
	if folderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, userID, *folderID); err != nil {
			return nil, 0, err
		}
	}
	return s.savedRepo.ListByUser(ctx, userID, folderID, offset, limit)
}

func sameFolder(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
