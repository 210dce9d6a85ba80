package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/middleware"
	"palettehub/internal/service"
)

// PaletteHandler handles the public catalog endpoints.
type PaletteHandler struct {
	catalogService    service.CatalogService
	popularityService service.PopularityService
}

// NewPaletteHandler creates a new PaletteHandler.
func NewPaletteHandler(catalogService service.CatalogService, popularityService service.PopularityService) *PaletteHandler {
	return &PaletteHandler{
		catalogService:    catalogService,
		popularityService: popularityService,
	}
}

// Search handles GET /api/v1/palettes/search?q=&limit=
func (h *PaletteHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query parameter q is required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	palettes, err := h.catalogService.Search(c.Request.Context(), query, limit, middleware.OptionalUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, palettes)
}

// Popular handles GET /api/v1/palettes/popular?timeframe=&page=&limit=
func (h *PaletteHandler) Popular(c *gin.Context) {
	timeframe := domain.Timeframe(c.DefaultQuery("timeframe", string(domain.TimeframeAll)))
	if !domain.ValidTimeframes[timeframe] {
		RespondError(c, http.StatusBadRequest, "INVALID_TIMEFRAME", "timeframe must be one of: all, week, month")
		return
	}

	page, offset, limit := parsePagination(c)

	palettes, total, err := h.popularityService.ListPopular(c.Request.Context(), timeframe, offset, limit, middleware.OptionalUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, palettes, NewPagMeta(page, limit, total))
}

// GetByID handles GET /api/v1/palettes/global/:id
func (h *PaletteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid palette ID")
		return
	}

	palette, err := h.catalogService.GetByID(c.Request.Context(), id, middleware.OptionalUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, palette)
}

// GetByExternalID handles GET /api/v1/palettes/external/:externalId
func (h *PaletteHandler) GetByExternalID(c *gin.Context) {
	externalID := c.Param("externalId")
	if externalID == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "external palette ID is required")
		return
	}

	palette, err := h.catalogService.GetByExternalID(c.Request.Context(), externalID, middleware.OptionalUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, palette)
}
