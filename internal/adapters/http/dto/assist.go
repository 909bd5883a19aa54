package dto

// LoginRequest carries the admin password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SuggestTagsRequest asks for tag suggestions for a quote text.
type SuggestTagsRequest struct {
	Text       string `json:"text" validate:"required"`
	AuthorName string `json:"authorName"`
}

// SuggestTagsResponse carries the suggested tag names.
type SuggestTagsResponse struct {
	Tags []string `json:"tags"`
}

// LookupQuoteRequest asks to identify a quote from a fragment.
type LookupQuoteRequest struct {
	Partial string `json:"partial" validate:"required"`
}
