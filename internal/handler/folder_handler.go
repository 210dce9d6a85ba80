package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"palettehub/internal/middleware"
	"palettehub/internal/service"
)

// FolderHandler handles folder management endpoints.
type FolderHandler struct {
	folderService service.FolderService
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(folderService service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// List handles GET /api/v1/folders
func (h *FolderHandler) List(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	folders, err := h.folderService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, folders)
}

// Get handles GET /api/v1/folders/:id
func (h *FolderHandler) Get(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
		return
	}

	folder, err := h.folderService.Get(c.Request.Context(), userID, folderID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, folder)
}

// Create handles POST /api/v1/folders
func (h *FolderHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateFolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	folder, err := h.folderService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, folder)
}

// Update handles PUT /api/v1/folders/:id
func (h *FolderHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
		return
	}

	var input service.UpdateFolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	folder, err := h.folderService.Update(c.Request.Context(), userID, folderID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, folder)
}

// Delete handles DELETE /api/v1/folders/:id
func (h *FolderHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
		return
	}

	if err := h.folderService.Delete(c.Request.Context(), userID, folderID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ListPalettes handles GET /api/v1/folders/:id/palettes
func (h *FolderHandler) ListPalettes(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid folder ID")
		return
	}

	page, offset, limit := parsePagination(c)

	entries, total, err := h.folderService.ListPalettes(c.Request.Context(), userID, folderID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, NewPagMeta(page, limit, total))
}
