package dto

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PaginationRequest represents limit/offset paging parameters.
type PaginationRequest struct {
	// Limit is the maximum number of items to return (1-100, default 20).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`

	// Offset skips past the first N matches.
	Offset int `form:"offset" validate:"omitempty,gte=0"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// GetOffset returns the offset clamped to zero.
func (p *PaginationRequest) GetOffset() int {
	if p.Offset < 0 {
		return 0
	}

	return p.Offset
}

// PagedResponse wraps one page of items with the total match count, so
// clients can render page controls without a second request.
type PagedResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPagedResponse creates a paged response. A nil items slice is
// rendered as an empty JSON array.
func NewPagedResponse[T any](items []T, total, limit, offset int) *PagedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PagedResponse[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
