package app

import (
	"context"
	"log/slog"
	"strings"

	"wisdomhub/internal/domain"
	"wisdomhub/internal/ports"
)

// CatalogService orchestrates author and tag use cases.
type CatalogService struct {
	authors ports.AuthorRepository
	tags    ports.TagRepository
	logger  *slog.Logger
}

// CatalogServiceConfig contains configuration for the catalog service.
type CatalogServiceConfig struct {
	Authors ports.AuthorRepository
	Tags    ports.TagRepository
	Logger  *slog.Logger
}

// NewCatalogService creates a new catalog service with the provided dependencies.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	return &CatalogService{
		authors: cfg.Authors,
		tags:    cfg.Tags,
		logger:  cfg.Logger,
	}
}

// ListAuthors returns all authors with their quote counts, by name.
func (s *CatalogService) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list authors",
			slog.Any("error", err),
		)
		return nil, err
	}

	return authors, nil
}

// CreateAuthor validates and stores a new author.
func (s *CatalogService) CreateAuthor(ctx context.Context, author domain.Author) (*domain.Author, error) {
	author.Name = strings.TrimSpace(author.Name)
	if author.Name == "" {
		return nil, domain.NewValidationError("name", "author name is required")
	}

	created, err := s.authors.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "author created",
		slog.String("author_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateAuthor validates and applies a partial patch.
func (s *CatalogService) UpdateAuthor(ctx context.Context, id string, patch domain.AuthorPatch) (*domain.Author, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "author name cannot be empty")
		}

		patch.Name = &name
	}

	author, err := s.authors.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "author updated",
		slog.String("author_id", author.ID),
	)

	return author, nil
}

// DeleteAuthor removes an author. Authors that still own quotes are
// protected: the caller must reassign or delete the quotes first.
func (s *CatalogService) DeleteAuthor(ctx context.Context, id string) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "author deleted",
		slog.String("author_id", id),
	)

	return nil
}

// ListTags returns all tags with their quote counts, by name.
func (s *CatalogService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tags",
			slog.Any("error", err),
		)
		return nil, err
	}

	return tags, nil
}

// CreateTag stores a new tag under its normalized name.
func (s *CatalogService) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	tag, err := s.tags.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "tag created",
		slog.String("tag_id", tag.ID),
		slog.String("name", tag.Name),
	)

	return tag, nil
}
