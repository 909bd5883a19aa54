package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wisdomhub/internal/domain"
)

// querier abstracts *sql.DB and *sql.Tx for shared query helpers.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// AuthorStore implements ports.AuthorRepository.
type AuthorStore struct {
	store *Store
}

// Resolve finds an author by exact name, inserting one if absent.
func (a *AuthorStore) Resolve(ctx context.Context, name string) (domain.Resolved, error) {
	var resolved domain.Resolved

	err := a.store.withTx(ctx, func(tx *sql.Tx) error {
		var txErr error

		resolved, txErr = resolveAuthor(ctx, tx, name)

		return txErr
	})
	if err != nil {
		return domain.Resolved{}, err
	}

	return resolved, nil
}

// resolveAuthor implements find-or-create by exact name. On a unique
// violation it rereads, so concurrent resolvers converge on one row.
func resolveAuthor(ctx context.Context, q querier, name string) (domain.Resolved, error) {
	var id string

	err := q.QueryRowContext(ctx, "SELECT id FROM authors WHERE name = ?", name).Scan(&id)
	if err == nil {
		return domain.Resolved{ID: id}, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Resolved{}, fmt.Errorf("find author: %w", err)
	}

	id = uuid.NewString()

	_, err = q.ExecContext(ctx, "INSERT INTO authors (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		if isUniqueViolation(err) {
			if err := q.QueryRowContext(ctx, "SELECT id FROM authors WHERE name = ?", name).Scan(&id); err != nil {
				return domain.Resolved{}, fmt.Errorf("reread author after conflict: %w", err)
			}

			return domain.Resolved{ID: id}, nil
		}

		return domain.Resolved{}, fmt.Errorf("insert author: %w", err)
	}

	return domain.Resolved{ID: id, Created: true}, nil
}

// List returns all authors ordered by name, each with its quote count.
func (a *AuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	rows, err := a.store.db.QueryContext(ctx, `
SELECT a.id, a.name, COALESCE(a.bio, ''), COALESCE(a.image_url, ''), COUNT(q.id)
FROM authors a
LEFT JOIN quotes q ON q.author_id = a.id
GROUP BY a.id
ORDER BY a.name`)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var authors []*domain.Author

	for rows.Next() {
		var author domain.Author

		if err := rows.Scan(&author.ID, &author.Name, &author.Bio, &author.ImageURL, &author.QuoteCount); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}

		authors = append(authors, &author)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, nil
}

// Create inserts an author. The name must be unused.
func (a *AuthorStore) Create(ctx context.Context, author domain.Author) (*domain.Author, error) {
	if author.ID == "" {
		author.ID = uuid.NewString()
	}

	_, err := a.store.db.ExecContext(ctx, `
INSERT INTO authors (id, name, bio, image_url)
VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''))`,
		author.ID, author.Name, author.Bio, author.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("author", author.Name)
		}

		return nil, fmt.Errorf("insert author: %w", err)
	}

	return a.getByID(ctx, author.ID)
}

// Update applies a partial patch to an author.
func (a *AuthorStore) Update(ctx context.Context, id string, patch domain.AuthorPatch) (*domain.Author, error) {
	err := a.store.withTx(ctx, func(tx *sql.Tx) error {
		var name, bio, imageURL string

		row := tx.QueryRowContext(ctx,
			"SELECT name, COALESCE(bio, ''), COALESCE(image_url, '') FROM authors WHERE id = ?", id)
		if err := row.Scan(&name, &bio, &imageURL); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("author", id)
			}

			return fmt.Errorf("find author: %w", err)
		}

		if patch.Name != nil {
			name = *patch.Name
		}

		if patch.Bio != nil {
			bio = *patch.Bio
		}

		if patch.ImageURL != nil {
			imageURL = *patch.ImageURL
		}

		_, err := tx.ExecContext(ctx, `
UPDATE authors SET name = ?, bio = NULLIF(?, ''), image_url = NULLIF(?, '') WHERE id = ?`,
			name, bio, imageURL, id)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.NewConflictError("author", name)
			}

			return fmt.Errorf("update author: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.getByID(ctx, id)
}

// Delete removes an author, refusing while quotes still reference it.
func (a *AuthorStore) Delete(ctx context.Context, id string) error {
	return a.store.withTx(ctx, func(tx *sql.Tx) error {
		var quoteCount int

		row := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes WHERE author_id = ?", id)
		if err := row.Scan(&quoteCount); err != nil {
			return fmt.Errorf("count author quotes: %w", err)
		}

		if quoteCount > 0 {
			return domain.NewDependentQuotesError(id, quoteCount)
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM authors WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete author: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete author: %w", err)
		}

		if affected == 0 {
			return domain.NewNotFoundError("author", id)
		}

		return nil
	})
}

func (a *AuthorStore) getByID(ctx context.Context, id string) (*domain.Author, error) {
	var author domain.Author

	row := a.store.db.QueryRowContext(ctx, `
SELECT a.id, a.name, COALESCE(a.bio, ''), COALESCE(a.image_url, ''),
       (SELECT COUNT(*) FROM quotes q WHERE q.author_id = a.id)
FROM authors a
WHERE a.id = ?`, id)

	if err := row.Scan(&author.ID, &author.Name, &author.Bio, &author.ImageURL, &author.QuoteCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("author", id)
		}

		return nil, fmt.Errorf("get author: %w", err)
	}

	return &author, nil
}
