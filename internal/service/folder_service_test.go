package service_test

import (
	"context"
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

func setupFolderService() (service.FolderService, *mocks.MockFolderRepo, *mocks.MockSavedPaletteRepo) {
	folderRepo := new(mocks.MockFolderRepo)
	savedRepo := new(mocks.MockSavedPaletteRepo)
	svc := service.NewFolderService(folderRepo, savedRepo, &mocks.MockTxManager{})
	return svc, folderRepo, savedRepo
}

// --- Create ---

func TestFolderService_Create_Success(t *testing.T) {
	svc, folderRepo, _ := setupFolderService()

	userID := uuid.New()
	folderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Folder")).Return(nil)

	folder, err := svc.Create(context.Background(), userID, service.CreateFolderInput{
		Name:  "Warm Tones",
		Color: "#FF8800",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Warm Tones", folder.Name)
	assert.Equal(t, "#FF8800", folder.Color)
	assert.False(t, folder.IsDefault)
	folderRepo.AssertExpectations(t)
}

func TestFolderService_Create_DefaultColor(t *testing.T) {
	svc, folderRepo, _ := setupFolderService()

	folderRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Folder")).Return(nil)

	folder, err := svc.Create(context.Background(), uuid.New(), service.CreateFolderInput{Name: "Blues"})

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultFolderColor, folder.Color)
}

func TestFolderService_Create_DuplicateName(t *testing.T) {
	svc, folderRepo, _ := setupFolderService()

	folderRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateFolderName)

	folder, err := svc.Create(context.Background(), uuid.New(), service.CreateFolderInput{Name: "Blues"})

	assert.Nil(t, folder)
	assert.ErrorIs(t, err, domain.ErrDuplicateFolderName)
}

func TestFolderService_Create_ValidationFailures(t *testing.T) {
	svc, _, _ := setupFolderService()

	cases := map[string]service.CreateFolderInput{
		"empty name":    {Name: ""},
		"long name":     {Name: strings.Repeat("a", 51)},
		"invalid color": {Name: "Blues", Color: "blue"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			folder, err := svc.Create(context.Background(), uuid.New(), input)
			assert.Nil(t, folder)
			assert.Error(t, err)
		})
	}
}

// --- Update ---

func TestFolderService_Update_DefaultFolderKeepsName(t *testing.T) {
	svc, folderRepo, _ := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	newName := "Renamed"
	newColor := "#123ABC"

	folderRepo.On("GetByID", mock.Anything, userID, folderID).Return(&domain.Folder{
		ID:        folderID,
		UserID:    userID,
		Name:      domain.DefaultFolderName,
		IsDefault: true,
	}, nil)
	folderRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *domain.Folder) bool {
		return f.Name == domain.DefaultFolderName && f.Color == newColor
	})).Return(nil)

	folder, err := svc.Update(context.Background(), userID, folderID, service.UpdateFolderInput{
		Name:  &newName,
		Color: &newColor,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultFolderName, folder.Name)
	assert.Equal(t, newColor, folder.Color)
}

func TestFolderService_Update_RenamesRegularFolder(t *testing.T) {
	svc, folderRepo, _ := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	newName := "Renamed"

	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID, Name: "Old"}, nil)
	folderRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	folder, err := svc.Update(context.Background(), userID, folderID, service.UpdateFolderInput{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", folder.Name)
}

// --- Delete ---

func TestFolderService_Delete_DefaultRejected(t *testing.T) {
	svc, folderRepo, savedRepo := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID, IsDefault: true}, nil)

	err := svc.Delete(context.Background(), userID, folderID)

	assert.ErrorIs(t, err, domain.ErrCannotDeleteDefaultFolder)
	savedRepo.AssertNotCalled(t, "ReassignFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFolderService_Delete_ReassignsToDefault(t *testing.T) {
	svc, folderRepo, savedRepo := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	defaultID := uuid.New()

	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID, PaletteCount: 3}, nil)
	folderRepo.On("GetDefault", mock.Anything, userID).
		Return(&domain.Folder{ID: defaultID, UserID: userID, IsDefault: true}, nil)
	savedRepo.On("ReassignFolder", mock.Anything, userID, folderID, defaultID).Return(3, nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, defaultID, 3).Return(nil)
	folderRepo.On("Delete", mock.Anything, userID, folderID).Return(nil)

	err := svc.Delete(context.Background(), userID, folderID)

	assert.NoError(t, err)
	folderRepo.AssertExpectations(t)
	savedRepo.AssertExpectations(t)
}

func TestFolderService_Delete_EmptyFolderSkipsCountTransfer(t *testing.T) {
	svc, folderRepo, savedRepo := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	defaultID := uuid.New()

	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID}, nil)
	folderRepo.On("GetDefault", mock.Anything, userID).
		Return(&domain.Folder{ID: defaultID, UserID: userID, IsDefault: true}, nil)
	savedRepo.On("ReassignFolder", mock.Anything, userID, folderID, defaultID).Return(0, nil)
	folderRepo.On("Delete", mock.Anything, userID, folderID).Return(nil)

	err := svc.Delete(context.Background(), userID, folderID)

	assert.NoError(t, err)
	folderRepo.AssertNotCalled(t, "AdjustPaletteCount", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListPalettes ---

func TestFolderService_ListPalettes_Success(t *testing.T) {
	svc, folderRepo, savedRepo := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()

	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID}, nil)
	savedRepo.On("ListByUser", mock.Anything, userID, &folderID, 0, 20).
		Return([]port.SavedPaletteEntry{{}, {}}, 2, nil)

	entries, total, err := svc.ListPalettes(context.Background(), userID, folderID, 0, 20)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, total)
}

func TestFolderService_ListPalettes_UnknownFolder(t *testing.T) {
	svc, folderRepo, savedRepo := setupFolderService()

	userID := uuid.New()
	folderID := uuid.New()
	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(nil, domain.ErrFolderNotFound)

	entries, total, err := svc.ListPalettes(context.Background(), userID, folderID, 0, 20)

	assert.Nil(t, entries)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	savedRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
