package domain

// Author represents a quote author.
//
// Author names are unique and matched case-sensitively on the
// interactive paths; the maintenance CLI is the only place that folds
// case-insensitive duplicates together.
type Author struct {
	ID       string
	Name     string
	Bio      string
	ImageURL string

	// QuoteCount is populated by listing queries for the filter UI.
	QuoteCount int
}

// AuthorPatch carries a partial author update. Nil fields keep the
// previous value.
type AuthorPatch struct {
	Name     *string
	Bio      *string
	ImageURL *string
}
