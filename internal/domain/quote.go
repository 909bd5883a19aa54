package domain

import "time"

// Quote represents a curated quotation with its author and tag set.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the body of the quote.
	Text string

	// AuthorID references the owning author.
	AuthorID string

	// AuthorName is the display name of the owning author.
	AuthorName string

	// Source is an optional attribution (book, speech, film).
	Source string

	// Tags is the ordered tag set associated with the quote.
	Tags []Tag

	// Favorite marks the quote for the curator's shortlist.
	Favorite bool

	// CreatedAt is when the quote was added to the collection.
	CreatedAt time.Time
}

// TagNames returns the quote's tag names in order.
func (q *Quote) TagNames() []string {
	names := make([]string, len(q.Tags))
	for i, t := range q.Tags {
		names[i] = t.Name
	}

	return names
}

// QuoteFilter narrows quote listings. Zero value means "everything".
type QuoteFilter struct {
	// Query is a case-insensitive substring matched against the quote
	// body and the author name.
	Query string

	// Tags filters to quotes carrying ANY of the given tag names.
	Tags []string

	// Authors filters to quotes by ANY of the given author names.
	Authors []string

	// Limit bounds the result set size. Zero means no limit.
	Limit int

	// Offset skips past the first N matches.
	Offset int
}

// QuoteDraft carries the fields needed to create a quote.
// Author and tags are referenced by name and resolved via find-or-create.
type QuoteDraft struct {
	Text       string
	AuthorName string
	Source     string
	Tags       []string
	Favorite   bool
}

// QuotePatch carries a partial quote update. Nil fields keep the
// previous value; a non-nil Tags fully replaces the association set.
type QuotePatch struct {
	Text       *string
	AuthorName *string
	Source     *string
	Favorite   *bool
	Tags       []string
	HasTags    bool
}
