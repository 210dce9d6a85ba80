package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"palettehub/internal/middleware"
	"palettehub/internal/service"
)

// jsonNullableString records whether its field appeared in the request body
// at all, so an explicit null is not read as an absent field.
type jsonNullableString struct {
	Set   bool
	Value *string
}

func (n *jsonNullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// SavedPaletteHandler handles the user's palette collection endpoints.
type SavedPaletteHandler struct {
	savedService service.SavedPaletteService
}

// NewSavedPaletteHandler creates a new SavedPaletteHandler.
func NewSavedPaletteHandler(savedService service.SavedPaletteService) *SavedPaletteHandler {
	return &SavedPaletteHandler{savedService: savedService}
}

// List handles GET /api/v1/palettes/saved?folderId=&page=&limit=
func (h *SavedPaletteHandler) List(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var folderID *uuid.UUID
	if raw := c.Query("folderId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
			return
		}
		folderID = &id
	}

	page, offset, limit := parsePagination(c)

	entries, total, err := h.savedService.List(c.Request.Context(), userID, folderID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, NewPagMeta(page, limit, total))
}

// Get handles GET /api/v1/palettes/saved/:id
func (h *SavedPaletteHandler) Get(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	saveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid saved palette ID")
		return
	}

	result, err := h.savedService.Get(c.Request.Context(), userID, saveID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Save handles POST /api/v1/palettes/save
func (h *SavedPaletteHandler) Save(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.SaveExternalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.savedService.SaveExternal(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	if result.Created {
		RespondCreated(c, result)
		return
	}
	RespondOK(c, result)
}

// Create handles POST /api/v1/palettes/create
func (h *SavedPaletteHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateCustomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.savedService.CreateCustom(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Update handles PUT /api/v1/palettes/saved/:id
func (h *SavedPaletteHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	saveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid saved palette ID")
		return
	}

	// folderId distinguishes three cases: absent leaves the folder alone,
	// null or an empty string moves the save out of any folder, a UUID
	// moves it into that folder.
	var req struct {
		FolderID      jsonNullableString `json:"folderId"`
		PersonalNotes *string            `json:"personalNotes"`
		PersonalTags  []string           `json:"personalTags"`
		IsLiked       *bool              `json:"isLiked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	input := service.UpdateSaveInput{
		PersonalNotes: req.PersonalNotes,
		PersonalTags:  req.PersonalTags,
		IsLiked:       req.IsLiked,
	}
	if req.FolderID.Set {
		input.SetFolder = true
		if req.FolderID.Value != nil && *req.FolderID.Value != "" {
			id, err := uuid.Parse(*req.FolderID.Value)
			if err != nil {
				RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
				return
			}
			input.FolderID = &id
		}
	}

	result, err := h.savedService.Update(c.Request.Context(), userID, saveID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Delete handles DELETE /api/v1/palettes/saved/:id
func (h *SavedPaletteHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	saveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid saved palette ID")
		return
	}

	if err := h.savedService.Unsave(c.Request.Context(), userID, saveID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
