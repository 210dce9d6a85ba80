package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/port"
	"palettehub/internal/service"
	"palettehub/mocks"
)

func setupSavedPaletteService() (
	service.SavedPaletteService,
	*mocks.MockPaletteRepo,
	*mocks.MockSavedPaletteRepo,
	*mocks.MockFolderRepo,
	*mocks.MockCatalogService,
) {
	paletteRepo := new(mocks.MockPaletteRepo)
	savedRepo := new(mocks.MockSavedPaletteRepo)
	folderRepo := new(mocks.MockFolderRepo)
	catalog := new(mocks.MockCatalogService)
	namer := new(mocks.MockColorNamer)
	namer.On("NameFor", mock.Anything).Return("Teal").Maybe()
	svc := service.NewSavedPaletteService(paletteRepo, savedRepo, folderRepo, catalog, namer, &mocks.MockTxManager{})
	return svc, paletteRepo, savedRepo, folderRepo, catalog
}

func validSaveInput() service.SaveExternalInput {
	return service.SaveExternalInput{
		ExternalID: "ext-1",
		Name:       "Sunset",
		Colors:     []string{"#FF0000", "#00FF00"},
	}
}

// --- SaveExternal ---

func TestSavedPaletteService_SaveExternal_Success(t *testing.T) {
	svc, paletteRepo, savedRepo, _, catalog := setupSavedPaletteService()

	userID := uuid.New()
	palette := externalPalette("ext-1")

	catalog.On("ResolveExternal", mock.Anything, mock.AnythingOfType("port.RawPalette"), &userID).
		Return(palette, nil)
	savedRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	paletteRepo.On("AdjustSaves", mock.Anything, palette.ID, 1).Return(nil)

	result, err := svc.SaveExternal(context.Background(), userID, validSaveInput())

	assert.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, palette.ID, result.Save.PaletteID)
	assert.Equal(t, userID, result.Save.UserID)
	assert.Equal(t, 1, result.Palette.TotalSaves)
	savedRepo.AssertExpectations(t)
	paletteRepo.AssertExpectations(t)
}

func TestSavedPaletteService_SaveExternal_IntoFolder(t *testing.T) {
	svc, paletteRepo, savedRepo, folderRepo, catalog := setupSavedPaletteService()

	userID := uuid.New()
	folderID := uuid.New()
	palette := externalPalette("ext-1")

	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(&domain.Folder{ID: folderID, UserID: userID}, nil)
	catalog.On("ResolveExternal", mock.Anything, mock.Anything, &userID).Return(palette, nil)
	savedRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, folderID, 1).Return(nil)
	paletteRepo.On("AdjustSaves", mock.Anything, palette.ID, 1).Return(nil)

	input := validSaveInput()
	input.FolderID = &folderID

	result, err := svc.SaveExternal(context.Background(), userID, input)

	assert.NoError(t, err)
	assert.Equal(t, folderID, *result.Save.FolderID)
	folderRepo.AssertExpectations(t)
}

func TestSavedPaletteService_SaveExternal_AlreadySaved(t *testing.T) {
	svc, paletteRepo, savedRepo, _, catalog := setupSavedPaletteService()

	userID := uuid.New()
	palette := externalPalette("ext-1")
	existing := &domain.SavedPalette{ID: uuid.New(), UserID: userID, PaletteID: palette.ID}

	catalog.On("ResolveExternal", mock.Anything, mock.Anything, &userID).Return(palette, nil)
	savedRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateSave)
	savedRepo.On("GetByUserAndPalette", mock.Anything, userID, palette.ID).Return(existing, nil)

	result, err := svc.SaveExternal(context.Background(), userID, validSaveInput())

	assert.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, existing.ID, result.Save.ID)
	paletteRepo.AssertNotCalled(t, "AdjustSaves", mock.Anything, mock.Anything, mock.Anything)
}

func TestSavedPaletteService_SaveExternal_UnknownFolder(t *testing.T) {
	svc, _, _, folderRepo, catalog := setupSavedPaletteService()

	userID := uuid.New()
	folderID := uuid.New()
	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(nil, domain.ErrFolderNotFound)

	input := validSaveInput()
	input.FolderID = &folderID

	result, err := svc.SaveExternal(context.Background(), userID, input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	catalog.AssertNotCalled(t, "ResolveExternal", mock.Anything, mock.Anything, mock.Anything)
}

func TestSavedPaletteService_SaveExternal_ValidationFailures(t *testing.T) {
	svc, _, _, _, _ := setupSavedPaletteService()
	userID := uuid.New()

	cases := map[string]func(*service.SaveExternalInput){
		"missing external id": func(i *service.SaveExternalInput) { i.ExternalID = "" },
		"empty name":          func(i *service.SaveExternalInput) { i.Name = "" },
		"single color":        func(i *service.SaveExternalInput) { i.Colors = []string{"#FF0000"} },
		"too many colors": func(i *service.SaveExternalInput) {
			i.Colors = make([]string, 11)
			for j := range i.Colors {
				i.Colors[j] = "#FF0000"
			}
		},
		"invalid hex": func(i *service.SaveExternalInput) { i.Colors = []string{"#FF0000", "not-a-color"} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validSaveInput()
			mutate(&input)
			result, err := svc.SaveExternal(context.Background(), userID, input)
			assert.Nil(t, result)
			assert.Error(t, err)
		})
	}
}

// --- CreateCustom ---

func TestSavedPaletteService_CreateCustom_Success(t *testing.T) {
	svc, paletteRepo, savedRepo, _, _ := setupSavedPaletteService()

	userID := uuid.New()

	paletteRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Palette")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Palette)
			p.ID = uuid.New()
			assert.Equal(t, domain.SourceUser, p.Source)
			assert.False(t, p.IsPublic)
			assert.Equal(t, &userID, p.CreatedBy)
			assert.Nil(t, p.ExternalID)
		}).Return(nil)
	savedRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	paletteRepo.On("AdjustSaves", mock.Anything, mock.Anything, 1).Return(nil)

	result, err := svc.CreateCustom(context.Background(), userID, service.CreateCustomInput{
		Name:   "My Palette",
		Colors: []string{"008080", "#FFFFFF"},
	})

	assert.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "#008080", result.Palette.Colors[0].Hex)
	assert.Equal(t, "Teal", result.Palette.Colors[0].Name)
	paletteRepo.AssertExpectations(t)
}

// --- Update ---

func TestSavedPaletteService_Update_MoveBetweenFolders(t *testing.T) {
	svc, paletteRepo, savedRepo, folderRepo, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	oldFolder := uuid.New()
	newFolder := uuid.New()
	palette := externalPalette("ext-1")

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: palette.ID, FolderID: &oldFolder}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(sp, nil)
	folderRepo.On("GetByID", mock.Anything, userID, newFolder).
		Return(&domain.Folder{ID: newFolder, UserID: userID}, nil)
	savedRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, oldFolder, -1).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, newFolder, 1).Return(nil)
	paletteRepo.On("GetByID", mock.Anything, palette.ID).Return(palette, nil)

	result, err := svc.Update(context.Background(), userID, saveID, service.UpdateSaveInput{
		SetFolder: true,
		FolderID:  &newFolder,
	})

	assert.NoError(t, err)
	assert.Equal(t, newFolder, *result.Save.FolderID)
	folderRepo.AssertExpectations(t)
}

func TestSavedPaletteService_Update_SameFolderNoCounterChange(t *testing.T) {
	svc, paletteRepo, savedRepo, folderRepo, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	folderID := uuid.New()
	palette := externalPalette("ext-1")
	notes := "new notes"

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: palette.ID, FolderID: &folderID}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(sp, nil)
	savedRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	paletteRepo.On("GetByID", mock.Anything, palette.ID).Return(palette, nil)

	result, err := svc.Update(context.Background(), userID, saveID, service.UpdateSaveInput{
		SetFolder:     true,
		FolderID:      &folderID,
		PersonalNotes: &notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, "new notes", result.Save.PersonalNotes)
	folderRepo.AssertNotCalled(t, "AdjustPaletteCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestSavedPaletteService_Update_MoveToRoot(t *testing.T) {
	svc, paletteRepo, savedRepo, folderRepo, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	oldFolder := uuid.New()
	palette := externalPalette("ext-1")

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: palette.ID, FolderID: &oldFolder}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(sp, nil)
	savedRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SavedPalette")).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, oldFolder, -1).Return(nil)
	paletteRepo.On("GetByID", mock.Anything, palette.ID).Return(palette, nil)

	result, err := svc.Update(context.Background(), userID, saveID, service.UpdateSaveInput{
		SetFolder: true,
	})

	assert.NoError(t, err)
	assert.Nil(t, result.Save.FolderID)
	folderRepo.AssertExpectations(t)
}

func TestSavedPaletteService_Update_ToggleLike(t *testing.T) {
	svc, paletteRepo, savedRepo, _, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	palette := externalPalette("ext-1")
	liked := true

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: palette.ID}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(sp, nil)
	savedRepo.On("Update", mock.Anything, mock.MatchedBy(func(sp *domain.SavedPalette) bool {
		return sp.IsLiked
	})).Return(nil)
	paletteRepo.On("GetByID", mock.Anything, palette.ID).Return(palette, nil)

	result, err := svc.Update(context.Background(), userID, saveID, service.UpdateSaveInput{IsLiked: &liked})

	assert.NoError(t, err)
	assert.True(t, result.Save.IsLiked)
}

// --- Unsave ---

func TestSavedPaletteService_Unsave_RollsBackCounters(t *testing.T) {
	svc, paletteRepo, savedRepo, folderRepo, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	folderID := uuid.New()
	paletteID := uuid.New()

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: paletteID, FolderID: &folderID}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(sp, nil)
	savedRepo.On("Delete", mock.Anything, userID, saveID).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, folderID, -1).Return(nil)
	paletteRepo.On("AdjustSaves", mock.Anything, paletteID, -1).Return(nil)

	err := svc.Unsave(context.Background(), userID, saveID)

	assert.NoError(t, err)
	savedRepo.AssertExpectations(t)
	folderRepo.AssertExpectations(t)
	paletteRepo.AssertExpectations(t)
}

// markingTxManager records whether a call happened between ExecTx entry and
// exit.
type markingTxManager struct {
	inTx bool
}

func (m *markingTxManager) ExecTx(ctx context.Context, fn port.TxFn) error {
	m.inTx = true
	defer func() { m.inTx = false }()
	return fn(ctx)
}

func TestSavedPaletteService_Unsave_ReadsRowInsideTransaction(t *testing.T) {
	paletteRepo := new(mocks.MockPaletteRepo)
	savedRepo := new(mocks.MockSavedPaletteRepo)
	folderRepo := new(mocks.MockFolderRepo)
	tx := &markingTxManager{}
	svc := service.NewSavedPaletteService(paletteRepo, savedRepo, folderRepo,
		new(mocks.MockCatalogService), new(mocks.MockColorNamer), tx)

	userID := uuid.New()
	saveID := uuid.New()
	folderID := uuid.New()
	paletteID := uuid.New()

	sp := &domain.SavedPalette{ID: saveID, UserID: userID, PaletteID: paletteID, FolderID: &folderID}
	savedRepo.On("GetByID", mock.Anything, userID, saveID).
		Run(func(mock.Arguments) { assert.True(t, tx.inTx) }).
		Return(sp, nil)
	savedRepo.On("Delete", mock.Anything, userID, saveID).Return(nil)
	folderRepo.On("AdjustPaletteCount", mock.Anything, folderID, -1).Return(nil)
	paletteRepo.On("AdjustSaves", mock.Anything, paletteID, -1).Return(nil)

	err := svc.Unsave(context.Background(), userID, saveID)

	assert.NoError(t, err)
	savedRepo.AssertExpectations(t)
	folderRepo.AssertExpectations(t)
}

func TestSavedPaletteService_Unsave_NotFound(t *testing.T) {
	svc, _, savedRepo, _, _ := setupSavedPaletteService()

	userID := uuid.New()
	saveID := uuid.New()
	savedRepo.On("GetByID", mock.Anything, userID, saveID).Return(nil, domain.ErrSaveNotFound)

	err := svc.Unsave(context.Background(), userID, saveID)

	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

// --- List ---

func TestSavedPaletteService_List_FolderOwnershipChecked(t *testing.T) {
	svc, _, savedRepo, folderRepo, _ := setupSavedPaletteService()

	userID := uuid.New()
	folderID := uuid.New()
	folderRepo.On("GetByID", mock.Anything, userID, folderID).
		Return(nil, domain.ErrFolderNotFound)

	entries, total, err := svc.List(context.Background(), userID, &folderID, 0, 20)

	assert.Nil(t, entries)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	savedRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSavedPaletteService_List_Unfiltered(t *testing.T) {
	svc, _, savedRepo, _, _ := setupSavedPaletteService()

	userID := uuid.New()
	savedRepo.On("ListByUser", mock.Anything, userID, (*uuid.UUID)(nil), 0, 20).
		Return([]port.SavedPaletteEntry{{}}, 1, nil)

	entries, total, err := svc.List(context.Background(), userID, nil, 0, 20)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, total)
}
