package dto

import (
	"strings"
	"time"

	"wisdomhub/internal/domain"
)

// QuoteResponse is the wire representation of a quote.
type QuoteResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Source     string    `json:"source,omitempty"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
}

// QuoteFromDomain converts a domain quote to its wire representation.
func QuoteFromDomain(quote *domain.Quote) QuoteResponse {
	tags := quote.TagNames()
	if tags == nil {
		tags = []string{}
	}

	return QuoteResponse{
		ID:         quote.ID,
		Text:       quote.Text,
		AuthorID:   quote.AuthorID,
		AuthorName: quote.AuthorName,
		Source:     quote.Source,
		Tags:       tags,
		IsFavorite: quote.Favorite,
		CreatedAt:  quote.CreatedAt,
	}
}

// QuotesFromDomain converts a list of domain quotes.
func QuotesFromDomain(quotes []*domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, quote := range quotes {
		out[i] = QuoteFromDomain(quote)
	}

	return out
}

// QuoteListRequest carries the public listing filters.
type QuoteListRequest struct {
	PaginationRequest

	// Query is a free-text search over quote text and author names.
	Query string `form:"q"`

	// Tags is a comma-separated list; matching quotes carry any of them.
	Tags string `form:"tags"`

	// Authors is a comma-separated list of author names.
	Authors string `form:"authors"`
}

// ToFilter converts the request to a domain filter.
func (r *QuoteListRequest) ToFilter() domain.QuoteFilter {
	return domain.QuoteFilter{
		Query:   strings.TrimSpace(r.Query),
		Tags:    splitCSV(r.Tags),
		Authors: splitCSV(r.Authors),
		Limit:   r.GetLimit(),
		Offset:  r.GetOffset(),
	}
}

// CreateQuoteRequest is the admin payload for adding a quote.
type CreateQuoteRequest struct {
	Text       string   `json:"text" validate:"required,notempty"`
	AuthorName string   `json:"authorName" validate:"required,notempty"`
	Source     string   `json:"source"`
	Tags       []string `json:"tags" validate:"omitempty,dive,max=49"`
	IsFavorite bool     `json:"isFavorite"`
}

// ToDraft converts the request to a domain draft.
func (r *CreateQuoteRequest) ToDraft() domain.QuoteDraft {
	return domain.QuoteDraft{
		Text:       r.Text,
		AuthorName: r.AuthorName,
		Source:     r.Source,
		Tags:       r.Tags,
		Favorite:   r.IsFavorite,
	}
}

// UpdateQuoteRequest is the admin payload for patching a quote.
// Absent fields keep their stored values; a present tags array fully
// replaces the tag set.
type UpdateQuoteRequest struct {
	Text       *string   `json:"text" validate:"omitempty,notempty"`
	AuthorName *string   `json:"authorName" validate:"omitempty,notempty"`
	Source     *string   `json:"source"`
	Tags       *[]string `json:"tags" validate:"omitempty,dive,max=49"`
	IsFavorite *bool     `json:"isFavorite"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateQuoteRequest) ToPatch() domain.QuotePatch {
	patch := domain.QuotePatch{
		Text:       r.Text,
		AuthorName: r.AuthorName,
		Source:     r.Source,
		Favorite:   r.IsFavorite,
	}

	if r.Tags != nil {
		patch.Tags = *r.Tags
		patch.HasTags = true
	}

	return patch
}

// RelatedQuotesRequest carries the related-quote query parameters.
type RelatedQuotesRequest struct {
	Author  string `form:"author"`
	Tags    string `form:"tags"`
	Exclude string `form:"exclude"`
}

// RelatedQuotesResponse bundles the two related lists.
type RelatedQuotesResponse struct {
	ByAuthor []QuoteResponse `json:"byAuthor"`
	ByTags   []QuoteResponse `json:"byTags"`
}

// splitCSV splits a comma-separated parameter, trimming entries and
// dropping empties.
func splitCSV(s string) []string {
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
