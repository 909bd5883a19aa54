package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wisdomhub/internal/domain"
)

// QuoteStore implements ports.QuoteRepository.
type QuoteStore struct {
	store *Store
}

const quoteColumns = "q.id, q.body, q.author_id, a.name, COALESCE(q.source, ''), q.created_at, q.is_favorite"

// Create inserts a quote, resolving author and tags with
// find-or-create semantics inside one transaction.
func (s *QuoteStore) Create(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	id := uuid.NewString()

	err := s.store.withTx(ctx, func(tx *sql.Tx) error {
		author, err := resolveAuthor(ctx, tx, draft.AuthorName)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
INSERT INTO quotes (id, body, author_id, source, created_at, is_favorite)
VALUES (?, ?, ?, NULLIF(?, ''), ?, ?)`,
			id, draft.Text, author.ID, draft.Source, time.Now().UTC().UnixMilli(), draft.Favorite)
		if err != nil {
			return fmt.Errorf("insert quote: %w", err)
		}

		return attachTags(ctx, tx, id, draft.Tags)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Update applies a partial patch. A present tag set fully replaces the
// existing associations.
func (s *QuoteStore) Update(ctx context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error) {
	err := s.store.withTx(ctx, func(tx *sql.Tx) error {
		var (
			body, authorID, source string
			favorite               bool
		)

		row := tx.QueryRowContext(ctx,
			"SELECT body, author_id, COALESCE(source, ''), is_favorite FROM quotes WHERE id = ?", id)
		if err := row.Scan(&body, &authorID, &source, &favorite); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("quote", id)
			}

			return fmt.Errorf("find quote: %w", err)
		}

		if patch.Text != nil {
			body = *patch.Text
		}

		if patch.Source != nil {
			source = *patch.Source
		}

		if patch.Favorite != nil {
			favorite = *patch.Favorite
		}

		if patch.AuthorName != nil {
			author, err := resolveAuthor(ctx, tx, *patch.AuthorName)
			if err != nil {
				return err
			}

			authorID = author.ID
		}

		_, err := tx.ExecContext(ctx, `
UPDATE quotes SET body = ?, author_id = ?, source = NULLIF(?, ''), is_favorite = ? WHERE id = ?`,
			body, authorID, source, favorite, id)
		if err != nil {
			return fmt.Errorf("update quote: %w", err)
		}

		if patch.HasTags {
			return replaceTags(ctx, tx, id, patch.Tags)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a quote; tag associations go with it via cascade.
func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}

	if affected == 0 {
		return domain.NewNotFoundError("quote", id)
	}

	return nil
}

// GetByID retrieves a quote with its author name and tag set.
func (s *QuoteStore) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	row := s.store.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
WHERE q.id = ?`, quoteColumns), id)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, fmt.Errorf("get quote: %w", err)
	}

	if err := s.loadTags(ctx, []*domain.Quote{quote}); err != nil {
		return nil, err
	}

	return quote, nil
}

// List returns quotes matching the filter, newest first.
func (s *QuoteStore) List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	where, args := buildQuoteFilter(filter)

	query := fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
%s
ORDER BY q.created_at DESC, q.id DESC`, quoteColumns, where)

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	} else if filter.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	return s.queryQuotes(ctx, query, args...)
}

// Count returns how many quotes match the filter.
func (s *QuoteStore) Count(ctx context.Context, filter domain.QuoteFilter) (int, error) {
	where, args := buildQuoteFilter(filter)

	var count int

	row := s.store.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT COUNT(*)
FROM quotes q
JOIN authors a ON a.id = q.author_id
%s`, where), args...)

	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}

	return count, nil
}

// Random returns one uniformly-selected quote.
func (s *QuoteStore) Random(ctx context.Context) (*domain.Quote, error) {
	row := s.store.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
ORDER BY RANDOM()
LIMIT 1`, quoteColumns))

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("quote", "")
		}

		return nil, fmt.Errorf("random quote: %w", err)
	}

	if err := s.loadTags(ctx, []*domain.Quote{quote}); err != nil {
		return nil, err
	}

	return quote, nil
}

// RelatedByAuthor returns up to limit quotes by the named author,
// excluding excludeID, newest first.
func (s *QuoteStore) RelatedByAuthor(ctx context.Context, author, excludeID string, limit int) ([]*domain.Quote, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
WHERE a.name = ? AND q.id <> ?
ORDER BY q.created_at DESC, q.id DESC
LIMIT ?`, quoteColumns)

	return s.queryQuotes(ctx, query, author, excludeID, limit)
}

// RelatedByTags returns up to limit quotes carrying any of the given
// tags, excluding excludeID, newest first.
func (s *QuoteStore) RelatedByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Quote, error) {
	normalized := normalizeTagSet(tags)
	if len(normalized) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(normalized)+2)
	for _, tag := range normalized {
		args = append(args, tag)
	}

	args = append(args, excludeID, limit)

	query := fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
WHERE q.id IN (
    SELECT qt.quote_id FROM quote_tags qt
    JOIN tags t ON t.id = qt.tag_id
    WHERE t.name IN (%s)
) AND q.id <> ?
ORDER BY q.created_at DESC, q.id DESC
LIMIT ?`, quoteColumns, placeholders(len(normalized)))

	return s.queryQuotes(ctx, query, args...)
}

// ReplaceTags swaps a quote's full tag set.
func (s *QuoteStore) ReplaceTags(ctx context.Context, quoteID string, tags []string) error {
	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		var found int

		row := tx.QueryRowContext(ctx, "SELECT 1 FROM quotes WHERE id = ?", quoteID)
		if err := row.Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("quote", quoteID)
			}

			return fmt.Errorf("find quote: %w", err)
		}

		return replaceTags(ctx, tx, quoteID, tags)
	})
}

// replaceTags clears and rebuilds a quote's tag associations.
func replaceTags(ctx context.Context, tx *sql.Tx, quoteID string, tags []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM quote_tags WHERE quote_id = ?", quoteID); err != nil {
		return fmt.Errorf("clear quote tags: %w", err)
	}

	return attachTags(ctx, tx, quoteID, tags)
}

// attachTags resolves each tag name and links it to the quote.
// Names are normalized and deduplicated; empties are skipped.
func attachTags(ctx context.Context, tx *sql.Tx, quoteID string, tags []string) error {
	for _, name := range normalizeTagSet(tags) {
		tag, err := resolveTag(ctx, tx, name)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO quote_tags (quote_id, tag_id) VALUES (?, ?)", quoteID, tag.ID)
		if err != nil {
			return fmt.Errorf("link tag: %w", err)
		}
	}

	return nil
}

// buildQuoteFilter renders the filter as a WHERE clause with args.
func buildQuoteFilter(filter domain.QuoteFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Query != "" {
		needle := "%" + strings.ToLower(filter.Query) + "%"
		conds = append(conds, "(LOWER(q.body) LIKE ? OR LOWER(a.name) LIKE ?)")
		args = append(args, needle, needle)
	}

	if tags := normalizeTagSet(filter.Tags); len(tags) > 0 {
		conds = append(conds, fmt.Sprintf(`q.id IN (
    SELECT qt.quote_id FROM quote_tags qt
    JOIN tags t ON t.id = qt.tag_id
    WHERE t.name IN (%s)
)`, placeholders(len(tags))))

		for _, tag := range tags {
			args = append(args, tag)
		}
	}

	if len(filter.Authors) > 0 {
		conds = append(conds, fmt.Sprintf("a.name IN (%s)", placeholders(len(filter.Authors))))

		for _, author := range filter.Authors {
			args = append(args, author)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func (s *QuoteStore) queryQuotes(ctx context.Context, query string, args ...any) ([]*domain.Quote, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote

	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}

		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	if err := s.loadTags(ctx, quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

// loadTags fills in the tag sets for a batch of quotes in one query.
func (s *QuoteStore) loadTags(ctx context.Context, quotes []*domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Quote, len(quotes))
	args := make([]any, 0, len(quotes))

	for _, quote := range quotes {
		quote.Tags = []domain.Tag{}
		byID[quote.ID] = quote
		args = append(args, quote.ID)
	}

	query := fmt.Sprintf(`
SELECT qt.quote_id, t.id, t.name
FROM quote_tags qt
JOIN tags t ON t.id = qt.tag_id
WHERE qt.quote_id IN (%s)
ORDER BY t.name`, placeholders(len(quotes)))

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load quote tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			quoteID string
			tag     domain.Tag
		)

		if err := rows.Scan(&quoteID, &tag.ID, &tag.Name); err != nil {
			return fmt.Errorf("scan quote tag: %w", err)
		}

		if quote, ok := byID[quoteID]; ok {
			quote.Tags = append(quote.Tags, tag)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate quote tags: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(row scanner) (*domain.Quote, error) {
	var (
		quote     domain.Quote
		createdAt int64
	)

	err := row.Scan(&quote.ID, &quote.Text, &quote.AuthorID, &quote.AuthorName,
		&quote.Source, &createdAt, &quote.Favorite)
	if err != nil {
		return nil, err
	}

	quote.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &quote, nil
}

// normalizeTagSet lowercases, trims, deduplicates, and drops empties,
// preserving first-seen order.
func normalizeTagSet(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		name := domain.NormalizeTagName(tag)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		out = append(out, name)
	}

	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
