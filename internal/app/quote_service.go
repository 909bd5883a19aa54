// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"strings"

	"wisdomhub/internal/domain"
	"wisdomhub/internal/ports"
)

// Related-quote limits, applied server-side regardless of caller input.
const (
	relatedByAuthorLimit = 3
	relatedByTagsLimit   = 4
)

// QuoteService orchestrates quote use cases for both the public
// browsing surface and the admin curation surface.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	quotes ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Quotes ports.QuoteRepository
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	return &QuoteService{
		quotes: cfg.Quotes,
		logger: cfg.Logger,
	}
}

// ListQuotes returns quotes matching the filter, newest first.
func (s *QuoteService) ListQuotes(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	quotes, err := s.quotes.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.Any("error", err),
		)
		return nil, err
	}

	return quotes, nil
}

// ListQuotesWithTotal returns one page of quotes plus the total match
// count, for paginated admin views. The page and the count are fetched
// concurrently.
func (s *QuoteService) ListQuotesWithTotal(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, int, error) {
	quotes, total, err := Parallel2(ctx,
		func(ctx context.Context) ([]*domain.Quote, error) {
			return s.quotes.List(ctx, filter)
		},
		func(ctx context.Context) (int, error) {
			return s.quotes.Count(ctx, filter)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes with total",
			slog.Any("error", err),
		)
		return nil, 0, err
	}

	return quotes, total, nil
}

// GetQuote retrieves a single quote by ID.
func (s *QuoteService) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return quote, nil
}

// RandomQuote returns one uniformly-selected quote.
func (s *QuoteService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	return s.quotes.Random(ctx)
}

// RelatedQuotes bundles the two related-quote lists for a detail view.
type RelatedQuotes struct {
	ByAuthor []*domain.Quote
	ByTags   []*domain.Quote
}

// Related returns quotes sharing the author (up to 3) and quotes
// sharing any tag (up to 4), excluding excludeID. At least one of
// author or tags must be given. Both lists are fetched concurrently.
func (s *QuoteService) Related(ctx context.Context, author string, tags []string, excludeID string) (*RelatedQuotes, error) {
	author = strings.TrimSpace(author)
	if author == "" && len(tags) == 0 {
		return nil, domain.NewValidationError("author", "author or tags is required")
	}

	byAuthor, byTags, err := Parallel2(ctx,
		func(ctx context.Context) ([]*domain.Quote, error) {
			if author == "" {
				return nil, nil
			}

			return s.quotes.RelatedByAuthor(ctx, author, excludeID, relatedByAuthorLimit)
		},
		func(ctx context.Context) ([]*domain.Quote, error) {
			if len(tags) == 0 {
				return nil, nil
			}

			return s.quotes.RelatedByTags(ctx, tags, excludeID, relatedByTagsLimit)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch related quotes",
			slog.Any("error", err),
		)
		return nil, err
	}

	return &RelatedQuotes{ByAuthor: byAuthor, ByTags: byTags}, nil
}

// CreateQuote validates and stores a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	draft.Text = strings.TrimSpace(draft.Text)
	draft.AuthorName = strings.TrimSpace(draft.AuthorName)
	draft.Source = strings.TrimSpace(draft.Source)

	if draft.Text == "" {
		return nil, domain.NewValidationError("text", "quote text is required")
	}

	if draft.AuthorName == "" {
		return nil, domain.NewValidationError("author", "author name is required")
	}

	quote, err := s.quotes.Create(ctx, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.AuthorName),
	)

	return quote, nil
}

// UpdateQuote validates and applies a partial patch.
func (s *QuoteService) UpdateQuote(ctx context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error) {
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, domain.NewValidationError("text", "quote text cannot be empty")
		}

		patch.Text = &text
	}

	if patch.AuthorName != nil {
		name := strings.TrimSpace(*patch.AuthorName)
		if name == "" {
			return nil, domain.NewValidationError("author", "author name cannot be empty")
		}

		patch.AuthorName = &name
	}

	quote, err := s.quotes.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote updated",
		slog.String("quote_id", quote.ID),
	)

	return quote, nil
}

// DeleteQuote removes a quote.
func (s *QuoteService) DeleteQuote(ctx context.Context, id string) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "quote deleted",
		slog.String("quote_id", id),
	)

	return nil
}
