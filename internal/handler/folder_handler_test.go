package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/handler"
	"palettehub/internal/service"
	"palettehub/mocks"
)

func TestFolderHandler_List_Success(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	mockFolder.On("List", mock.Anything, userID).Return([]domain.Folder{
		{ID: uuid.New(), UserID: userID, Name: domain.DefaultFolderName, IsDefault: true},
	}, nil)

	w, c := authedRequest(t, http.MethodGet, "/api/v1/folders", nil, userID, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockFolder.AssertExpectations(t)
}

func TestFolderHandler_Create_Success(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	mockFolder.On("Create", mock.Anything, userID, mock.AnythingOfType("service.CreateFolderInput")).
		Return(&domain.Folder{ID: uuid.New(), UserID: userID, Name: "Warm Tones"}, nil)

	w, c := authedRequest(t, http.MethodPost, "/api/v1/folders", map[string]string{
		"name": "Warm Tones",
	}, userID, nil)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestFolderHandler_Create_DuplicateName(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	mockFolder.On("Create", mock.Anything, userID, mock.Anything).
		Return(nil, domain.ErrDuplicateFolderName)

	w, c := authedRequest(t, http.MethodPost, "/api/v1/folders", map[string]string{
		"name": "Warm Tones",
	}, userID, nil)
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFolderHandler_Create_ValidationFields(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	mockFolder.On("Create", mock.Anything, userID, mock.Anything).
		Return(nil, service.CreateFolderInput{Name: ""}.Validate())

	w, c := authedRequest(t, http.MethodPost, "/api/v1/folders", map[string]string{
		"name": "",
	}, userID, nil)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestFolderHandler_Delete_DefaultRejected(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	folderID := uuid.New()
	mockFolder.On("Delete", mock.Anything, userID, folderID).
		Return(domain.ErrCannotDeleteDefaultFolder)

	w, c := authedRequest(t, http.MethodDelete, "/api/v1/folders/"+folderID.String(),
		nil, userID, gin.Params{{Key: "id", Value: folderID.String()}})
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CANNOT_DELETE_DEFAULT_FOLDER")
}

func TestFolderHandler_ListPalettes_NotFound(t *testing.T) {
	mockFolder := new(mocks.MockFolderService)
	h := handler.NewFolderHandler(mockFolder)

	userID := uuid.New()
	folderID := uuid.New()
	mockFolder.On("ListPalettes", mock.Anything, userID, folderID, 0, 20).
		Return(nil, 0, domain.ErrFolderNotFound)

	w, c := authedRequest(t, http.MethodGet, "/api/v1/folders/"+folderID.String()+"/palettes",
		nil, userID, gin.Params{{Key: "id", Value: folderID.String()}})
	h.ListPalettes(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
