package handler_test

import (
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
	"palettehub/mocks"
)

func getRequest(t *testing.T, target string, params gin.Params) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return w, c
}

func annotated(id uuid.UUID) domain.AnnotatedPalette {
	return domain.AnnotatedPalette{
		Palette: domain.Palette{
			ID:       id,
			Name:     "Sunset",
			Source:   domain.SourceExternal,
			IsPublic: true,
		},
	}
}

func TestPaletteHandler_Search_Success(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	mockCatalog.On("Search", mock.Anything, "sunset", 5, (*uuid.UUID)(nil)).
		Return([]domain.AnnotatedPalette{annotated(uuid.New())}, nil)

	w, c := getRequest(t, "/api/v1/palettes/search?q=sunset&limit=5", nil)
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestPaletteHandler_Search_MissingQuery(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	w, c := getRequest(t, "/api/v1/palettes/search", nil)
	h.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCatalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaletteHandler_Search_UpstreamDown(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	mockCatalog.On("Search", mock.Anything, "sunset", 20, (*uuid.UUID)(nil)).
		Return(nil, domain.ErrUpstreamUnavailable)

	w, c := getRequest(t, "/api/v1/palettes/search?q=sunset", nil)
	h.Search(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPaletteHandler_Popular_Success(t *testing.T) {
	mockPopularity := new(mocks.MockPopularityService)
	h := handler.NewPaletteHandler(nil, mockPopularity)

	mockPopularity.On("ListPopular", mock.Anything, domain.TimeframeWeek, 20, 20, (*uuid.UUID)(nil)).
		Return([]domain.AnnotatedPalette{annotated(uuid.New())}, 45, nil)

	w, c := getRequest(t, "/api/v1/palettes/popular?timeframe=week&page=2", nil)
	h.Popular(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.Current)
	assert.Equal(t, 3, resp.Meta.Pages)
	assert.Equal(t, 45, resp.Meta.Total)
	assert.True(t, resp.Meta.HasNext)
	assert.True(t, resp.Meta.HasPrev)
}

func TestPaletteHandler_Popular_InvalidTimeframe(t *testing.T) {
	mockPopularity := new(mocks.MockPopularityService)
	h := handler.NewPaletteHandler(nil, mockPopularity)

	w, c := getRequest(t, "/api/v1/palettes/popular?timeframe=decade", nil)
	h.Popular(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPopularity.AssertNotCalled(t, "ListPopular",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaletteHandler_GetByID_NotFound(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	id := uuid.New()
	mockCatalog.On("GetByID", mock.Anything, id, (*uuid.UUID)(nil)).
		Return(nil, domain.ErrPaletteNotFound)

	w, c := getRequest(t, "/api/v1/palettes/global/"+id.String(),
		gin.Params{{Key: "id", Value: id.String()}})
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaletteHandler_GetByID_BadID(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	w, c := getRequest(t, "/api/v1/palettes/global/nope",
		gin.Params{{Key: "id", Value: "nope"}})
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaletteHandler_GetByExternalID_Success(t *testing.T) {
	mockCatalog := new(mocks.MockCatalogService)
	h := handler.NewPaletteHandler(mockCatalog, nil)

	entry := annotated(uuid.New())
	mockCatalog.On("GetByExternalID", mock.Anything, "ext-1", (*uuid.UUID)(nil)).
		Return(&entry, nil)

	w, c := getRequest(t, "/api/v1/palettes/external/ext-1",
		gin.Params{{Key: "externalId", Value: "ext-1"}})
	h.GetByExternalID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCatalog.AssertExpectations(t)
}
