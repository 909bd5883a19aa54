package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/app"
)

// QuoteHandler handles the public quote browsing endpoints.
type QuoteHandler struct {
	quotes *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quotes *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
	}
}

// ListQuotes handles GET /api/v1/quotes
// Supports free-text search plus tag and author filters.
//
// @Summary List quotes
// @Description Lists quotes newest first, with optional search and filters
// @Tags quotes
// @Produce json
// @Param q query string false "Free-text search over quote text and author names"
// @Param tags query string false "Comma-separated tag names (any match)"
// @Param authors query string false "Comma-separated author names (any match)"
// @Success 200 {object} dto.PagedResponse[dto.QuoteResponse]
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
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

// GetRandomQuote handles GET /api/v1/quotes/random
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.quotes.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromDomain(quote))
}

// GetRelatedQuotes handles GET /api/v1/quotes/related
// Returns quotes sharing the author and quotes sharing any tag.
// At least one of author or tags must be provided.
//
// @Summary Get related quotes
// @Tags quotes
// @Produce json
// @Param author query string false "Author name"
// @Param tags query string false "Comma-separated tag names"
// @Param exclude query string false "Quote ID to exclude"
// @Success 200 {object} dto.RelatedQuotesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/related [get]
func (h *QuoteHandler) GetRelatedQuotes(c *gin.Context) {
	author := strings.TrimSpace(c.Query("author"))
	tags := splitQueryList(c.Query("tags"))
	exclude := c.Query("exclude")

	related, err := h.quotes.Related(c.Request.Context(), author, tags, exclude)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RelatedQuotesResponse{
		ByAuthor: dto.QuotesFromDomain(related.ByAuthor),
		ByTags:   dto.QuotesFromDomain(related.ByTags),
	})
}

// GetQuoteByID handles GET /api/v1/quotes/:id
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.quotes.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromDomain(quote))
}

// RegisterQuoteRoutes registers the public quote routes on the given group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/related", h.GetRelatedQuotes)
	quotes.GET("/:id", h.GetQuoteByID)
}

// splitQueryList splits a comma-separated query parameter.
func splitQueryList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
