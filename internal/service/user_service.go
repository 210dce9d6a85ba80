package service

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// UpdateProfileInput is a partial patch of the caller's profile. Identity
// fields (username, email, password) are not patchable here.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

// Validate checks the input fields.
func (i UpdateProfileInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Length(0, 50)),
		validation.Field(&i.LastName, validation.Length(0, 50)),
		validation.Field(&i.Avatar, validation.Length(0, 500)),
	)
}

// ProfileStats are the headline counts shown with the profile.
type ProfileStats struct {
	TotalSavedPalettes   int `json:"totalSavedPalettes"`
	TotalCreatedPalettes int `json:"totalCreatedPalettes"`
	TotalFolders         int `json:"totalFolders"`
	LikedPalettes        int `json:"likedPalettes"`
}

// Profile is a user together with their headline stats.
type Profile struct {
	User  domain.User  `json:"user"`
	Stats ProfileStats `json:"stats"`
}

// UserStats is the full statistics breakdown for a user: saved and created
// palette counts, folder count, and the most recent saves.
type UserStats struct {
	Saved struct {
		TotalSavedPalettes int `json:"totalSavedPalettes"`
		LikedPalettes      int `json:"likedPalettes"`
	} `json:"saved"`
	Created struct {
		TotalCreatedPalettes int `json:"totalCreatedPalettes"`
		TotalViews           int `json:"totalViews"`
		TotalLikes           int `json:"totalLikes"`
		TotalSaves           int `json:"totalSaves"`
	} `json:"created"`
	Organization struct {
		TotalFolders int `json:"totalFolders"`
	} `json:"organization"`
	RecentSaves []port.SavedPaletteEntry `json:"recentSaves"`
}

// recentSavesLimit caps the recent-activity slice in the stats breakdown.
const recentSavesLimit = 5

// UserService serves the caller's own profile and usage statistics.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// UpdateProfile applies a partial patch to the mutable profile fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}

type userService struct {
	userRepo    port.UserRepository
	paletteRepo port.PaletteRepository
	savedRepo   port.SavedPaletteRepository
	folderRepo  port.FolderRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(
	userRepo port.UserRepository,
	paletteRepo port.PaletteRepository,
	savedRepo port.SavedPaletteRepository,
	folderRepo port.FolderRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		paletteRepo: paletteRepo,
		savedRepo:   savedRepo,
		folderRepo:  folderRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, liked, err := s.savedRepo.SaveCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	created, err := s.paletteRepo.CreatedByStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	folders, err := s.folderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User: *user,
		Stats: ProfileStats{
			TotalSavedPalettes:   saved,
			TotalCreatedPalettes: created.Palettes,
			TotalFolders:         folders,
			LikedPalettes:        liked,
		},
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	saved, liked, err := s.savedRepo.SaveCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	created, err := s.paletteRepo.CreatedByStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	folders, err := s.folderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, _, err := s.savedRepo.ListByUser(ctx, userID, nil, 0, recentSavesLimit)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{RecentSaves: recent}
	stats.Saved.TotalSavedPalettes = saved
	stats.Saved.LikedPalettes = liked
	stats.Created.TotalCreatedPalettes = created.Palettes
	stats.Created.TotalViews = created.TotalViews
	stats.Created.TotalLikes = created.TotalLikes
	stats.Created.TotalSaves = created.TotalSaves
	stats.Organization.TotalFolders = folders
	return stats, nil
}
