// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"wisdomhub/internal/domain"
)

// QuoteRepository persists quotes and their tag associations.
//
// Multi-step writes (author resolution, quote insert, tag replacement)
// are atomic: implementations wrap each logical operation in a single
// transaction and roll back on any failure.
type QuoteRepository interface {
	// Create inserts a quote, resolving author and tags by name with
	// find-or-create semantics. Returns the stored quote.
	Create(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)

	// Update applies a partial patch. Nil fields keep the previous
	// value; a present tag set fully replaces the associations.
	// Returns domain.ErrNotFound if the quote does not exist.
	Update(ctx context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error)

	// Delete removes a quote and, via cascade, its tag associations.
	// Returns domain.ErrNotFound if the quote does not exist.
	Delete(ctx context.Context, id string) error

	// GetByID retrieves a quote with its author name and tag set.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// List returns quotes matching the filter, newest first.
	List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error)

	// Count returns the number of quotes matching the filter,
	// ignoring Limit and Offset.
	Count(ctx context.Context, filter domain.QuoteFilter) (int, error)

	// Random returns one uniformly-selected quote, or
	// domain.ErrNotFound when the store is empty.
	Random(ctx context.Context) (*domain.Quote, error)

	// RelatedByAuthor returns up to limit quotes by the named author,
	// excluding excludeID.
	RelatedByAuthor(ctx context.Context, author, excludeID string, limit int) ([]*domain.Quote, error)

	// RelatedByTags returns up to limit quotes carrying any of the
	// given tags, excluding excludeID.
	RelatedByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Quote, error)

	// ReplaceTags swaps a quote's full tag set, resolving each name
	// with find-or-create semantics.
	ReplaceTags(ctx context.Context, quoteID string, tags []string) error
}

// AuthorRepository persists authors.
//
// Resolve may insert as a side effect of what looks like a read:
// callers must treat "resolve name to id" as a potentially-writing
// operation.
type AuthorRepository interface {
	// Resolve finds an author by exact name, inserting one if absent.
	Resolve(ctx context.Context, name string) (domain.Resolved, error)

	// List returns all authors ordered by name, each carrying its
	// quote count.
	List(ctx context.Context) ([]*domain.Author, error)

	// Create inserts an author. Returns domain.ErrConflict if the
	// name is taken.
	Create(ctx context.Context, author domain.Author) (*domain.Author, error)

	// Update applies a partial patch.
	// Returns domain.ErrNotFound if the author does not exist.
	Update(ctx context.Context, id string, patch domain.AuthorPatch) (*domain.Author, error)

	// Delete removes an author. Returns domain.ErrDependentQuotes
	// while any quote still references it.
	Delete(ctx context.Context, id string) error
}

// TagRepository persists tags.
type TagRepository interface {
	// Resolve finds a tag by normalized name, inserting one if absent.
	Resolve(ctx context.Context, name string) (domain.Resolved, error)

	// List returns all tags ordered by name, each carrying its quote
	// count.
	List(ctx context.Context) ([]*domain.Tag, error)

	// Names returns the full tag vocabulary ordered by name. Used to
	// bias AI suggestions toward existing tags.
	Names(ctx context.Context) ([]string, error)

	// Create inserts a tag with a normalized name. Returns
	// domain.ErrConflict on a duplicate.
	Create(ctx context.Context, name string) (*domain.Tag, error)
}
