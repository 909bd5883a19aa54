package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/app"
)

// AdminHandler handles the password-protected curation endpoints.
// Authentication happens in middleware; handlers assume an admin.
type AdminHandler struct {
	quotes  *app.QuoteService
	catalog *app.CatalogService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(quotes *app.QuoteService, catalog *app.CatalogService) *AdminHandler {
	return &AdminHandler{
		quotes:  quotes,
		catalog: catalog,
	}
}

// ListQuotes handles GET /api/v1/admin/quotes with the same filters as
// the public listing plus a total count for pagination controls.
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	var req dto.QuoteListRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	filter := req.ToFilter()

	quotes, total, err := h.quotes.ListQuotesWithTotal(c.Request.Context(), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResponse(
		dto.QuotesFromDomain(quotes), total, filter.Limit, filter.Offset))
}

// CreateQuote handles POST /api/v1/admin/quotes.
func (h *AdminHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	quote, err := h.quotes.CreateQuote(c.Request.Context(), req.ToDraft())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuoteFromDomain(quote))
}

// UpdateQuote handles PUT /api/v1/admin/quotes/:id.
func (h *AdminHandler) UpdateQuote(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	quote, err := h.quotes.UpdateQuote(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromDomain(quote))
}

// DeleteQuote handles DELETE /api/v1/admin/quotes/:id.
func (h *AdminHandler) DeleteQuote(c *gin.Context) {
	if err := h.quotes.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAuthor handles POST /api/v1/admin/authors.
func (h *AdminHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	author, err := h.catalog.CreateAuthor(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthorFromDomain(author))
}

// UpdateAuthor handles PUT /api/v1/admin/authors/:id.
func (h *AdminHandler) UpdateAuthor(c *gin.Context) {
	var req dto.UpdateAuthorRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	author, err := h.catalog.UpdateAuthor(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorFromDomain(author))
}

// DeleteAuthor handles DELETE /api/v1/admin/authors/:id.
// Deleting is refused while the author still owns quotes.
func (h *AdminHandler) DeleteAuthor(c *gin.Context) {
	if err := h.catalog.DeleteAuthor(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTag handles POST /api/v1/admin/tags.
func (h *AdminHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	tag, err := h.catalog.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TagFromDomain(tag))
}

// RegisterAdminRoutes registers the curation routes on an
// already-authenticated group.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.ListQuotes)
	rg.POST("/quotes", h.CreateQuote)
	rg.PUT("/quotes/:id", h.UpdateQuote)
	rg.DELETE("/quotes/:id", h.DeleteQuote)

	rg.POST("/authors", h.CreateAuthor)
	rg.PUT("/authors/:id", h.UpdateAuthor)
	rg.DELETE("/authors/:id", h.DeleteAuthor)

	rg.POST("/tags", h.CreateTag)
}
