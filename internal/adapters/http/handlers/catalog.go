package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/app"
)

// CatalogHandler handles the public author and tag listing endpoints.
type CatalogHandler struct {
	catalog *app.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// ListAuthors handles GET /api/v1/authors
//
// @Summary List authors with quote counts
// @Tags authors
// @Produce json
// @Success 200 {array} dto.AuthorResponse
// @Router /api/v1/authors [get]
func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.catalog.ListAuthors(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorsFromDomain(authors))
}

// ListTags handles GET /api/v1/tags
//
// @Summary List tags with quote counts
// @Tags tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Router /api/v1/tags [get]
func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.catalog.ListTags(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TagsFromDomain(tags))
}

// RegisterCatalogRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.ListAuthors)
	rg.GET("/tags", h.ListTags)
}
