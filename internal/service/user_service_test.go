package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
	"palettehub/internal/service"
	"palettehub/mocks"
)

func setupUserService() (
	service.UserService,
	*mocks.MockUserRepo,
	*mocks.MockPaletteRepo,
	*mocks.MockSavedPaletteRepo,
	*mocks.MockFolderRepo,
) {
	userRepo := new(mocks.MockUserRepo)
	paletteRepo := new(mocks.MockPaletteRepo)
	savedRepo := new(mocks.MockSavedPaletteRepo)
	folderRepo := new(mocks.MockFolderRepo)
	svc := service.NewUserService(userRepo, paletteRepo, savedRepo, folderRepo)
	return svc, userRepo, paletteRepo, savedRepo, folderRepo
}

// --- GetProfile ---

func TestUserService_GetProfile_AggregatesCounts(t *testing.T) {
	svc, userRepo, paletteRepo, savedRepo, folderRepo := setupUserService()

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Username: "ada"}, nil)
	savedRepo.On("SaveCounts", mock.Anything, userID).Return(12, 4, nil)
	paletteRepo.On("CreatedByStats", mock.Anything, userID).
		Return(port.CreatedStats{Palettes: 3, TotalViews: 90, TotalLikes: 7, TotalSaves: 15}, nil)
	folderRepo.On("CountByUser", mock.Anything, userID).Return(5, nil)

	profile, err := svc.GetProfile(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, "ada", profile.User.Username)
	assert.Equal(t, 12, profile.Stats.TotalSavedPalettes)
	assert.Equal(t, 3, profile.Stats.TotalCreatedPalettes)
	assert.Equal(t, 5, profile.Stats.TotalFolders)
	assert.Equal(t, 4, profile.Stats.LikedPalettes)
}

func TestUserService_GetProfile_UnknownUser(t *testing.T) {
	svc, userRepo, _, _, _ := setupUserService()

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	profile, err := svc.GetProfile(context.Background(), userID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- UpdateProfile ---

func TestUserService_UpdateProfile_PartialPatch(t *testing.T) {
	svc, userRepo, _, _, _ := setupUserService()

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, FirstName: "Ada", LastName: "Lovelace", Avatar: "old.png"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.FirstName == "Grace" && u.LastName == "Lovelace" && u.Avatar == "old.png"
	})).Return(nil)

	first := "Grace"
	user, err := svc.UpdateProfile(context.Background(), userID, service.UpdateProfileInput{FirstName: &first})

	assert.NoError(t, err)
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	userRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_ValidationFailure(t *testing.T) {
	svc, userRepo, _, _, _ := setupUserService()

	long := strings.Repeat("a", 51)
	user, err := svc.UpdateProfile(context.Background(), uuid.New(), service.UpdateProfileInput{FirstName: &long})

	assert.Nil(t, user)
	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// --- GetStats ---

func TestUserService_GetStats_IncludesRecentSaves(t *testing.T) {
	svc, _, paletteRepo, savedRepo, folderRepo := setupUserService()

	userID := uuid.New()
	recent := []port.SavedPaletteEntry{
		{Save: domain.SavedPalette{ID: uuid.New(), UserID: userID}},
		{Save: domain.SavedPalette{ID: uuid.New(), UserID: userID}},
	}
	savedRepo.On("SaveCounts", mock.Anything, userID).Return(20, 6, nil)
	paletteRepo.On("CreatedByStats", mock.Anything, userID).
		Return(port.CreatedStats{Palettes: 2, TotalViews: 40, TotalLikes: 3, TotalSaves: 9}, nil)
	folderRepo.On("CountByUser", mock.Anything, userID).Return(4, nil)
	savedRepo.On("ListByUser", mock.Anything, userID, (*uuid.UUID)(nil), 0, 5).
		Return(recent, 20, nil)

	stats, err := svc.GetStats(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 20, stats.Saved.TotalSavedPalettes)
	assert.Equal(t, 6, stats.Saved.LikedPalettes)
	assert.Equal(t, 2, stats.Created.TotalCreatedPalettes)
	assert.Equal(t, 40, stats.Created.TotalViews)
	assert.Equal(t, 3, stats.Created.TotalLikes)
	assert.Equal(t, 9, stats.Created.TotalSaves)
	assert.Equal(t, 4, stats.Organization.TotalFolders)
	assert.Len(t, stats.RecentSaves, 2)
	savedRepo.AssertExpectations(t)
}

func TestUserService_GetStats_CountError(t *testing.T) {
	svc, _, _, savedRepo, _ := setupUserService()

	userID := uuid.New()
	savedRepo.On("SaveCounts", mock.Anything, userID).Return(0, 0, errors.New("db down"))

	stats, err := svc.GetStats(context.Background(), userID)

	assert.Nil(t, stats)
	assert.Error(t, err)
}
