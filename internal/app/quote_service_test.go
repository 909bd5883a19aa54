package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wisdomhub/internal/domain"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeQuoteRepo implements ports.QuoteRepository with overridable funcs.
type fakeQuoteRepo struct {
	create          func(context.Context, domain.QuoteDraft) (*domain.Quote, error)
	update          func(context.Context, string, domain.QuotePatch) (*domain.Quote, error)
	delete          func(context.Context, string) error
	getByID         func(context.Context, string) (*domain.Quote, error)
	list            func(context.Context, domain.QuoteFilter) ([]*domain.Quote, error)
	count           func(context.Context, domain.QuoteFilter) (int, error)
	random          func(context.Context) (*domain.Quote, error)
	relatedByAuthor func(context.Context, string, string, int) ([]*domain.Quote, error)
	relatedByTags   func(context.Context, []string, string, int) ([]*domain.Quote, error)
	replaceTags     func(context.Context, string, []string) error
}

func (f *fakeQuoteRepo) Create(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	return f.create(ctx, draft)
}

func (f *fakeQuoteRepo) Update(ctx context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error) {
	return f.update(ctx, id, patch)
}

func (f *fakeQuoteRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

func (f *fakeQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	return f.getByID(ctx, id)
}

func (f *fakeQuoteRepo) List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	return f.list(ctx, filter)
}

func (f *fakeQuoteRepo) Count(ctx context.Context, filter domain.QuoteFilter) (int, error) {
	return f.count(ctx, filter)
}

func (f *fakeQuoteRepo) Random(ctx context.Context) (*domain.Quote, error) {
	return f.random(ctx)
}

func (f *fakeQuoteRepo) RelatedByAuthor(ctx context.Context, author, excludeID string, limit int) ([]*domain.Quote, error) {
	return f.relatedByAuthor(ctx, author, excludeID, limit)
}

func (f *fakeQuoteRepo) RelatedByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Quote, error) {
	return f.relatedByTags(ctx, tags, excludeID, limit)
}

func (f *fakeQuoteRepo) ReplaceTags(ctx context.Context, quoteID string, tags []string) error {
	return f.replaceTags(ctx, quoteID, tags)
}

func newQuoteService(repo *fakeQuoteRepo) *QuoteService {
	return NewQuoteService(QuoteServiceConfig{
		Quotes: repo,
		Logger: discardLogger(),
	})
}

func TestQuoteService_ListQuotesWithTotal(t *testing.T) {
	quotes := []*domain.Quote{{ID: "q1"}, {ID: "q2"}}

	svc := newQuoteService(&fakeQuoteRepo{
		list: func(_ context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
			assert.Equal(t, 2, filter.Limit)
			return quotes, nil
		},
		count: func(_ context.Context, filter domain.QuoteFilter) (int, error) {
			return 7, nil
		},
	})

	got, total, err := svc.ListQuotesWithTotal(context.Background(), domain.QuoteFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, quotes, got)
	assert.Equal(t, 7, total)
}

func TestQuoteService_ListQuotesWithTotal_CountError(t *testing.T) {
	svc := newQuoteService(&fakeQuoteRepo{
		list: func(context.Context, domain.QuoteFilter) ([]*domain.Quote, error) {
			return nil, nil
		},
		count: func(context.Context, domain.QuoteFilter) (int, error) {
			return 0, errors.New("boom")
		},
	})

	_, _, err := svc.ListQuotesWithTotal(context.Background(), domain.QuoteFilter{})
	assert.Error(t, err)
}

func TestQuoteService_Related(t *testing.T) {
	t.Run("requires author or tags", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{})

		_, err := svc.Related(context.Background(), "  ", nil, "q1")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("fetches both lists with server-side limits", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{
			relatedByAuthor: func(_ context.Context, author, excludeID string, limit int) ([]*domain.Quote, error) {
				assert.Equal(t, "Rumi", author)
				assert.Equal(t, "q1", excludeID)
				assert.Equal(t, 3, limit)
				return []*domain.Quote{{ID: "a1"}}, nil
			},
			relatedByTags: func(_ context.Context, tags []string, excludeID string, limit int) ([]*domain.Quote, error) {
				assert.Equal(t, []string{"love"}, tags)
				assert.Equal(t, 4, limit)
				return []*domain.Quote{{ID: "t1"}, {ID: "t2"}}, nil
			},
		})

		related, err := svc.Related(context.Background(), "Rumi", []string{"love"}, "q1")
		require.NoError(t, err)
		assert.Len(t, related.ByAuthor, 1)
		assert.Len(t, related.ByTags, 2)
	})

	t.Run("author only skips tag query", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{
			relatedByAuthor: func(context.Context, string, string, int) ([]*domain.Quote, error) {
				return []*domain.Quote{{ID: "a1"}}, nil
			},
		})

		related, err := svc.Related(context.Background(), "Rumi", nil, "q1")
		require.NoError(t, err)
		assert.Len(t, related.ByAuthor, 1)
		assert.Empty(t, related.ByTags)
	})
}

func TestQuoteService_CreateQuote(t *testing.T) {
	t.Run("trims and stores", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{
			create: func(_ context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
				assert.Equal(t, "hello world", draft.Text)
				assert.Equal(t, "Rumi", draft.AuthorName)
				return &domain.Quote{ID: "q1", Text: draft.Text}, nil
			},
		})

		quote, err := svc.CreateQuote(context.Background(), domain.QuoteDraft{
			Text:       "  hello world  ",
			AuthorName: " Rumi ",
		})
		require.NoError(t, err)
		assert.Equal(t, "q1", quote.ID)
	})

	tests := []struct {
		name  string
		draft domain.QuoteDraft
	}{
		{name: "missing text", draft: domain.QuoteDraft{AuthorName: "Rumi"}},
		{name: "blank text", draft: domain.QuoteDraft{Text: "   ", AuthorName: "Rumi"}},
		{name: "missing author", draft: domain.QuoteDraft{Text: "hello world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQuoteService(&fakeQuoteRepo{})

			_, err := svc.CreateQuote(context.Background(), tt.draft)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestQuoteService_UpdateQuote(t *testing.T) {
	t.Run("rejects blank patch values", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{})
		blank := "   "

		_, err := svc.UpdateQuote(context.Background(), "q1", domain.QuotePatch{Text: &blank})
		assert.True(t, domain.IsValidation(err))

		_, err = svc.UpdateQuote(context.Background(), "q1", domain.QuotePatch{AuthorName: &blank})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("passes trimmed patch through", func(t *testing.T) {
		text := "  new text "

		svc := newQuoteService(&fakeQuoteRepo{
			update: func(_ context.Context, id string, patch domain.QuotePatch) (*domain.Quote, error) {
				assert.Equal(t, "q1", id)
				require.NotNil(t, patch.Text)
				assert.Equal(t, "new text", *patch.Text)
				return &domain.Quote{ID: id}, nil
			},
		})

		_, err := svc.UpdateQuote(context.Background(), "q1", domain.QuotePatch{Text: &text})
		require.NoError(t, err)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc := newQuoteService(&fakeQuoteRepo{
			update: func(_ context.Context, id string, _ domain.QuotePatch) (*domain.Quote, error) {
				return nil, domain.NewNotFoundError("quote", id)
			},
		})

		_, err := svc.UpdateQuote(context.Background(), "missing", domain.QuotePatch{})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_DeleteQuote(t *testing.T) {
	deleted := ""

	svc := newQuoteService(&fakeQuoteRepo{
		delete: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	require.NoError(t, svc.DeleteQuote(context.Background(), "q1"))
	assert.Equal(t, "q1", deleted)
}
