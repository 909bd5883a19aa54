package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wisdomhub/internal/domain"
)

// TestNewErrorResponse verifies the basic error envelope shape.
func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "quote not found")

	require.NotNil(t, resp)
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "quote not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
	assert.Empty(t, resp.TraceID)
}

// TestNewErrorResponseWithDetails verifies field-level details are attached.
func TestNewErrorResponseWithDetails(t *testing.T) {
	details := map[string]string{
		"text": "must not be empty",
	}

	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", details)

	require.NotNil(t, resp)
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, "request validation failed", resp.Error.Message)
	assert.Equal(t, details, resp.Error.Details)
}

// TestWithTraceID verifies the trace ID is set and the response returned for chaining.
func TestWithTraceID(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeInternal, "boom").WithTraceID("abc123")

	assert.Equal(t, "abc123", resp.TraceID)
}

// TestHTTPStatusFromCode verifies the code-to-status mapping.
func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeDependentQuotes, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

// TestMapDomainError verifies domain errors map to the right status and code.
func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("quote", "q-123"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("author", "Seneca"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("text", "must not be empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "unauthorized",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   ErrorCodeUnauthorized,
		},
		{
			name:       "dependent quotes",
			err:        domain.NewDependentQuotesError("a-1", 3),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeDependentQuotes,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("gemini", "timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown error",
			err:        errors.New("driver crashed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

// TestMapDomainError_ValidationDetails verifies field details are extracted.
func TestMapDomainError_ValidationDetails(t *testing.T) {
	status, resp := MapDomainError(domain.NewValidationError("authorName", "must not be empty"))

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error.Details)
	assert.Equal(t, "must not be empty", resp.Error.Details["authorName"])
}

// TestMapDomainError_UnknownHidesInternals verifies unknown errors are not echoed back.
func TestMapDomainError_UnknownHidesInternals(t *testing.T) {
	_, resp := MapDomainError(errors.New("pq: connection refused"))

	require.NotNil(t, resp)
	assert.Equal(t, "an internal error occurred", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}

// TestMapDomainError_NilError verifies nil maps to 200 with no body.
func TestMapDomainError_NilError(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

// TestPaginationRequest_GetLimit verifies limit defaults and clamping.
func TestPaginationRequest_GetLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -5, DefaultLimit},
		{"within range", 50, 50},
		{"at max", MaxLimit, MaxLimit},
		{"over max is clamped", 500, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationRequest{Limit: tt.limit}
			assert.Equal(t, tt.want, p.GetLimit())
		})
	}
}

// TestPaginationRequest_GetOffset verifies negative offsets are clamped to zero.
func TestPaginationRequest_GetOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"zero", 0, 0},
		{"negative is clamped", -1, 0},
		{"positive", 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationRequest{Offset: tt.offset}
			assert.Equal(t, tt.want, p.GetOffset())
		})
	}
}

// TestNewPagedResponse verifies nil items become an empty slice.
func TestNewPagedResponse(t *testing.T) {
	resp := NewPagedResponse[string](nil, 0, 20, 0)

	require.NotNil(t, resp)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 20, resp.Limit)
}

// TestQuoteListRequest_ToFilter verifies CSV parameters are split and trimmed.
func TestQuoteListRequest_ToFilter(t *testing.T) {
	req := &QuoteListRequest{
		PaginationRequest: PaginationRequest{Limit: 10, Offset: 20},
		Query:             "  preparation  ",
		Tags:              "stoicism, wisdom , ,",
		Authors:           "Seneca",
	}

	filter := req.ToFilter()

	assert.Equal(t, "preparation", filter.Query)
	assert.Equal(t, []string{"stoicism", "wisdom"}, filter.Tags)
	assert.Equal(t, []string{"Seneca"}, filter.Authors)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset)
}

// TestQuoteListRequest_ToFilter_Empty verifies empty parameters yield nil slices.
func TestQuoteListRequest_ToFilter_Empty(t *testing.T) {
	req := &QuoteListRequest{}

	filter := req.ToFilter()

	assert.Empty(t, filter.Query)
	assert.Nil(t, filter.Tags)
	assert.Nil(t, filter.Authors)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
}

// TestCreateQuoteRequest_ToDraft verifies the draft conversion.
func TestCreateQuoteRequest_ToDraft(t *testing.T) {
	req := &CreateQuoteRequest{
		Text:       "Luck is what happens when preparation meets opportunity.",
		AuthorName: "Seneca",
		Source:     "Letters",
		Tags:       []string{"luck", "preparation"},
		IsFavorite: true,
	}

	draft := req.ToDraft()

	assert.Equal(t, req.Text, draft.Text)
	assert.Equal(t, "Seneca", draft.AuthorName)
	assert.Equal(t, "Letters", draft.Source)
	assert.Equal(t, []string{"luck", "preparation"}, draft.Tags)
	assert.True(t, draft.Favorite)
}

// TestUpdateQuoteRequest_ToPatch verifies absent fields stay nil and a
// present tags array sets HasTags.
func TestUpdateQuoteRequest_ToPatch(t *testing.T) {
	t.Run("tags absent", func(t *testing.T) {
		text := "new text"
		req := &UpdateQuoteRequest{Text: &text}

		patch := req.ToPatch()

		require.NotNil(t, patch.Text)
		assert.Equal(t, "new text", *patch.Text)
		assert.Nil(t, patch.AuthorName)
		assert.False(t, patch.HasTags)
		assert.Nil(t, patch.Tags)
	})

	t.Run("tags present replaces set", func(t *testing.T) {
		tags := []string{"stoicism"}
		req := &UpdateQuoteRequest{Tags: &tags}

		patch := req.ToPatch()

		assert.True(t, patch.HasTags)
		assert.Equal(t, []string{"stoicism"}, patch.Tags)
	})

	t.Run("empty tags array clears set", func(t *testing.T) {
		tags := []string{}
		req := &UpdateQuoteRequest{Tags: &tags}

		patch := req.ToPatch()

		assert.True(t, patch.HasTags)
		assert.Empty(t, patch.Tags)
	})
}

// TestValidate_NotEmpty verifies whitespace-only strings fail the notempty rule.
func TestValidate_NotEmpty(t *testing.T) {
	req := &CreateQuoteRequest{
		Text:       "   ",
		AuthorName: "Seneca",
	}

	err := Validate(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationError(err))

	fieldErrors := ValidationErrors(err)
	assert.Equal(t, "must not be empty", fieldErrors["text"])
}

// TestValidate_RequiredFields verifies missing fields are reported by JSON name.
func TestValidate_RequiredFields(t *testing.T) {
	req := &CreateQuoteRequest{}

	err := Validate(req)

	require.Error(t, err)

	fieldErrors := ValidationErrors(err)
	assert.Contains(t, fieldErrors, "text")
	assert.Contains(t, fieldErrors, "authorName")
	assert.Equal(t, "this field is required", fieldErrors["text"])
}

// TestValidate_Valid verifies a well-formed request passes.
func TestValidate_Valid(t *testing.T) {
	req := &CreateQuoteRequest{
		Text:       "The obstacle is the way.",
		AuthorName: "Marcus Aurelius",
		Tags:       []string{"stoicism"},
	}

	assert.NoError(t, Validate(req))
}
