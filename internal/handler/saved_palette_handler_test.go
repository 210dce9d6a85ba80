package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"palettehub/internal/domain"
	"palettehub/internal/handler"
	"palettehub/internal/middleware"
	"palettehub/internal/port"
	"palettehub/internal/service"
	"palettehub/mocks"
)

func authedRequest(t *testing.T, method, target string, payload interface{}, userID uuid.UUID, params gin.Params) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set(middleware.ContextKeyUserID, userID)
	return w, c
}

func saveResult(userID uuid.UUID, created bool) *service.SaveResult {
	paletteID := uuid.New()
	return &service.SaveResult{
		Save:    domain.SavedPalette{ID: uuid.New(), UserID: userID, PaletteID: paletteID},
		Palette: domain.Palette{ID: paletteID, Name: "Sunset"},
		Created: created,
	}
}

func TestSavedPaletteHandler_Save_Created(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	mockSaved.On("SaveExternal", mock.Anything, userID, mock.AnythingOfType("service.SaveExternalInput")).
		Return(saveResult(userID, true), nil)

	w, c := authedRequest(t, http.MethodPost, "/api/v1/palettes/save", map[string]interface{}{
		"externalId": "ext-1",
		"name":       "Sunset",
		"colors":     []string{"#FF0000", "#00FF00"},
	}, userID, nil)
	h.Save(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSaved.AssertExpectations(t)
}

func TestSavedPaletteHandler_Save_AlreadySaved(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	mockSaved.On("SaveExternal", mock.Anything, userID, mock.Anything).
		Return(saveResult(userID, false), nil)

	w, c := authedRequest(t, http.MethodPost, "/api/v1/palettes/save", map[string]interface{}{
		"externalId": "ext-1",
		"name":       "Sunset",
		"colors":     []string{"#FF0000", "#00FF00"},
	}, userID, nil)
	h.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSavedPaletteHandler_Save_Unauthenticated(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	body, _ := json.Marshal(map[string]string{"externalId": "ext-1"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/palettes/save", bytes.NewReader(body))

	h.Save(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSaved.AssertNotCalled(t, "SaveExternal", mock.Anything, mock.Anything, mock.Anything)
}

func TestSavedPaletteHandler_Create_Success(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	mockSaved.On("CreateCustom", mock.Anything, userID, mock.AnythingOfType("service.CreateCustomInput")).
		Return(saveResult(userID, true), nil)

	w, c := authedRequest(t, http.MethodPost, "/api/v1/palettes/create", map[string]interface{}{
		"name":   "My Palette",
		"colors": []string{"#008080", "#FFFFFF"},
	}, userID, nil)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSavedPaletteHandler_Update_FolderSemantics(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	saveID := uuid.New()
	folderID := uuid.New()

	// folderId present with a UUID moves the save into that folder.
	mockSaved.On("Update", mock.Anything, userID, saveID, mock.MatchedBy(func(in service.UpdateSaveInput) bool {
		return in.SetFolder && in.FolderID != nil && *in.FolderID == folderID
	})).Return(saveResult(userID, false), nil).Once()

	w, c := authedRequest(t, http.MethodPut, "/api/v1/palettes/saved/"+saveID.String(), map[string]interface{}{
		"folderId": folderID.String(),
	}, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)

	// folderId present but empty moves it out of any folder.
	mockSaved.On("Update", mock.Anything, userID, saveID, mock.MatchedBy(func(in service.UpdateSaveInput) bool {
		return in.SetFolder && in.FolderID == nil
	})).Return(saveResult(userID, false), nil).Once()

	w, c = authedRequest(t, http.MethodPut, "/api/v1/palettes/saved/"+saveID.String(), map[string]interface{}{
		"folderId": "",
	}, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)

	// An explicit null also moves it out of any folder.
	mockSaved.On("Update", mock.Anything, userID, saveID, mock.MatchedBy(func(in service.UpdateSaveInput) bool {
		return in.SetFolder && in.FolderID == nil
	})).Return(saveResult(userID, false), nil).Once()

	w, c = authedRequest(t, http.MethodPut, "/api/v1/palettes/saved/"+saveID.String(), map[string]interface{}{
		"folderId": nil,
	}, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)

	// folderId absent leaves the folder alone.
	notes := "updated"
	mockSaved.On("Update", mock.Anything, userID, saveID, mock.MatchedBy(func(in service.UpdateSaveInput) bool {
		return !in.SetFolder && in.PersonalNotes != nil && *in.PersonalNotes == notes
	})).Return(saveResult(userID, false), nil).Once()

	w, c = authedRequest(t, http.MethodPut, "/api/v1/palettes/saved/"+saveID.String(), map[string]interface{}{
		"personalNotes": notes,
	}, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)

	mockSaved.AssertExpectations(t)
}

func TestSavedPaletteHandler_Delete_Success(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	saveID := uuid.New()
	mockSaved.On("Unsave", mock.Anything, userID, saveID).Return(nil)

	w, c := authedRequest(t, http.MethodDelete, "/api/v1/palettes/saved/"+saveID.String(),
		nil, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSaved.AssertExpectations(t)
}

func TestSavedPaletteHandler_Delete_NotFound(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	saveID := uuid.New()
	mockSaved.On("Unsave", mock.Anything, userID, saveID).Return(domain.ErrSaveNotFound)

	w, c := authedRequest(t, http.MethodDelete, "/api/v1/palettes/saved/"+saveID.String(),
		nil, userID, gin.Params{{Key: "id", Value: saveID.String()}})
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedPaletteHandler_List_FolderFilter(t *testing.T) {
	mockSaved := new(mocks.MockSavedPaletteService)
	h := handler.NewSavedPaletteHandler(mockSaved)

	userID := uuid.New()
	folderID := uuid.New()
	mockSaved.On("List", mock.Anything, userID, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == folderID
	}), 0, 20).Return([]port.SavedPaletteEntry{}, 0, nil)

	w, c := authedRequest(t, http.MethodGet, "/api/v1/palettes/saved?folderId="+folderID.String(),
		nil, userID, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
