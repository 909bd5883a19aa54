package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wisdomhub/internal/domain"
)

// DuplicateGroup describes quotes sharing an identical body,
// ordered oldest first.
type DuplicateGroup struct {
	Text   string
	Quotes []DuplicateQuote
}

// DuplicateQuote identifies one member of a duplicate group.
type DuplicateQuote struct {
	ID         string
	AuthorName string
	CreatedAt  time.Time
}

// DuplicateQuotes returns groups of quotes with identical bodies.
func (s *Store) DuplicateQuotes(ctx context.Context) ([]DuplicateGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT q.body, q.id, a.name, q.created_at
FROM quotes q
JOIN authors a ON a.id = q.author_id
WHERE q.body IN (SELECT body FROM quotes GROUP BY body HAVING COUNT(*) > 1)
ORDER BY q.body, q.created_at, q.id`)
	if err != nil {
		return nil, fmt.Errorf("find duplicate quotes: %w", err)
	}
	defer rows.Close()

	var groups []DuplicateGroup

	for rows.Next() {
		var (
			body, id, authorName string
			createdAt            int64
		)

		if err := rows.Scan(&body, &id, &authorName, &createdAt); err != nil {
			return nil, fmt.Errorf("scan duplicate quote: %w", err)
		}

		member := DuplicateQuote{
			ID:         id,
			AuthorName: authorName,
			CreatedAt:  time.UnixMilli(createdAt).UTC(),
		}

		if len(groups) == 0 || groups[len(groups)-1].Text != body {
			groups = append(groups, DuplicateGroup{Text: body})
		}

		groups[len(groups)-1].Quotes = append(groups[len(groups)-1].Quotes, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate duplicate quotes: %w", err)
	}

	return groups, nil
}

// RemoveDuplicateQuotes deletes every duplicate except the oldest of
// each group. Returns the number of quotes removed.
func (s *Store) RemoveDuplicateQuotes(ctx context.Context) (int, error) {
	groups, err := s.DuplicateQuotes(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, group := range groups {
			for _, quote := range group.Quotes[1:] {
				if _, err := tx.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", quote.ID); err != nil {
					return fmt.Errorf("delete duplicate quote: %w", err)
				}

				removed++
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// MergeAuthors folds authors whose names differ only by case into one.
// The earliest-created author of each group keeps its spelling; quotes
// are repointed and the duplicates deleted. Returns how many authors
// were removed.
func (s *Store) MergeAuthors(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name
FROM authors
WHERE LOWER(name) IN (SELECT LOWER(name) FROM authors GROUP BY LOWER(name) HAVING COUNT(*) > 1)
ORDER BY LOWER(name), rowid`)
	if err != nil {
		return 0, fmt.Errorf("find duplicate authors: %w", err)
	}

	type authorRef struct {
		id, name string
	}

	var groups [][]authorRef

	var lastKey string

	for rows.Next() {
		var ref authorRef

		if err := rows.Scan(&ref.id, &ref.name); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan duplicate author: %w", err)
		}

		key := strings.ToLower(ref.name)
		if len(groups) == 0 || key != lastKey {
			groups = append(groups, nil)
			lastKey = key
		}

		groups[len(groups)-1] = append(groups[len(groups)-1], ref)
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate duplicate authors: %w", err)
	}

	rows.Close()

	removed := 0

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, group := range groups {
			keeper := group[0]

			for _, dup := range group[1:] {
				if _, err := tx.ExecContext(ctx,
					"UPDATE quotes SET author_id = ? WHERE author_id = ?", keeper.id, dup.id); err != nil {
					return fmt.Errorf("repoint quotes: %w", err)
				}

				if _, err := tx.ExecContext(ctx, "DELETE FROM authors WHERE id = ?", dup.id); err != nil {
					return fmt.Errorf("delete duplicate author: %w", err)
				}

				removed++
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// DeleteOrphanTags removes tags no quote references anymore.
// Returns how many tags were removed.
func (s *Store) DeleteOrphanTags(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM quote_tags)")
	if err != nil {
		return 0, fmt.Errorf("delete orphan tags: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete orphan tags: %w", err)
	}

	return int(affected), nil
}

// ExportQuotes returns the full collection ordered oldest first, with
// authors and tag sets attached.
func (s *Store) ExportQuotes(ctx context.Context) ([]*domain.Quote, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM quotes q
JOIN authors a ON a.id = q.author_id
ORDER BY q.created_at, q.id`, quoteColumns)

	return s.Quotes().queryQuotes(ctx, query)
}
