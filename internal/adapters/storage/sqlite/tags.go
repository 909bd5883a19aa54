package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wisdomhub/internal/domain"
)

// TagStore implements ports.TagRepository. Tag names are normalized
// (lowercased, trimmed) before every read or write.
type TagStore struct {
	store *Store
}

// Resolve finds a tag by normalized name, inserting one if absent.
func (t *TagStore) Resolve(ctx context.Context, name string) (domain.Resolved, error) {
	var resolved domain.Resolved

	err := t.store.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error

		resolved, txErr = resolveTag(ctx, tx, name)

		return txErr
	})
	if err != nil {
		return domain.Resolved{}, err
	}

	return resolved, nil
}

func resolveTag(ctx context.Context, q querier, name string) (domain.Resolved, error) {
	name = domain.NormalizeTagName(name)
	if name == "" {
		return domain.Resolved{}, domain.NewValidationError("name", "tag name is required")
	}

	var id string

	err := q.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		return domain.Resolved{ID: id}, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Resolved{}, fmt.Errorf("find tag: %w", err)
	}

	id = uuid.NewString()

	_, err = q.ExecContext(ctx, "INSERT INTO tags (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		if isUniqueViolation(err) {
			if err := q.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", name).Scan(&id); err != nil {
				return domain.Resolved{}, fmt.Errorf("reread tag after conflict: %w", err)
			}

			return domain.Resolved{ID: id}, nil
		}

		return domain.Resolved{}, fmt.Errorf("insert tag: %w", err)
	}

	return domain.Resolved{ID: id, Created: true}, nil
}

// List returns all tags ordered by name, each with its quote count.
func (t *TagStore) List(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := t.store.db.QueryContext(ctx, `
SELECT t.id, t.name, COUNT(qt.quote_id)
FROM tags t
LEFT JOIN quote_tags qt ON qt.tag_id = t.id
GROUP BY t.id
ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag

	for rows.Next() {
		var tag domain.Tag

		if err := rows.Scan(&tag.ID, &tag.Name, &tag.QuoteCount); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}

		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	return tags, nil
}

// Names returns the full tag vocabulary ordered by name.
func (t *TagStore) Names(ctx context.Context) ([]string, error) {
	rows, err := t.store.db.QueryContext(ctx, "SELECT name FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tag names: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string

		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag name: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag names: %w", err)
	}

	return names, nil
}

// Create inserts a tag with a normalized name.
func (t *TagStore) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name = domain.NormalizeTagName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "tag name is required")
	}

	id := uuid.NewString()

	_, err := t.store.db.ExecContext(ctx, "INSERT INTO tags (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("tag", name)
		}

		return nil, fmt.Errorf("insert tag: %w", err)
	}

	return &domain.Tag{ID: id, Name: name}, nil
}
