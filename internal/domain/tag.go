package domain

import "strings"

// Tag is a lowercase category label attached to quotes.
type Tag struct {
	ID   string
	Name string

	// QuoteCount is populated by listing queries for the filter UI.
	QuoteCount int
}

// NormalizeTagName lowercases and trims a tag name. Every write path
// runs tag names through this before lookup or insert.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolved is the outcome of a find-or-create lookup. Created reports
// whether the call inserted a new row, making creation races visible
// to callers instead of hiding them behind a plain identifier.
type Resolved struct {
	ID      string
	Created bool
}
