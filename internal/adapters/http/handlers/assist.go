package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/app"
)

// AssistHandler handles the AI-assisted curation endpoints.
type AssistHandler struct {
	assist *app.AssistService
}

// NewAssistHandler creates a new assist handler.
func NewAssistHandler(assist *app.AssistService) *AssistHandler {
	return &AssistHandler{
		assist: assist,
	}
}

// SuggestTags handles POST /api/v1/admin/suggest-tags.
// Suggestions are best-effort: short inputs and model failures both
// produce an empty list rather than an error.
func (h *AssistHandler) SuggestTags(c *gin.Context) {
	var req dto.SuggestTagsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	tags, err := h.assist.SuggestTags(c.Request.Context(), req.Text, req.AuthorName)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggestTagsResponse{Tags: tags})
}

// LookupQuote handles POST /api/v1/admin/lookup-quote.
// An unidentified or unparseable result is still a 200; the found flag
// tells the client which case it got.
func (h *AssistHandler) LookupQuote(c *gin.Context) {
	var req dto.LookupQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	result, err := h.assist.LookupQuote(c.Request.Context(), req.Partial)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterAssistRoutes registers the assist routes on an
// already-authenticated group.
func (h *AssistHandler) RegisterAssistRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggest-tags", h.SuggestTags)
	rg.POST("/lookup-quote", h.LookupQuote)
}
