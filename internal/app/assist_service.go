package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"wisdomhub/internal/domain"
	"wisdomhub/internal/ports"
)

// Assist input and output bounds.
const (
	minAssistInputLength = 10
	maxSuggestedTags     = 5
	maxTagLength         = 50
)

var (
	codeFencePattern = regexp.MustCompile("```json\n?|\n?```")
	quotedPattern    = regexp.MustCompile(`["']([^"']+)["']`)
)

// AssistService wraps the text generation model behind curation-shaped
// helpers. Suggestions are best-effort: the admin UI works without
// them, so generation failures degrade to empty results where they can.
type AssistService struct {
	generator ports.TextGenerator
	tags      ports.TagRepository
	logger    *slog.Logger
}

// AssistServiceConfig contains configuration for the assist service.
type AssistServiceConfig struct {
	Generator ports.TextGenerator
	Tags      ports.TagRepository
	Logger    *slog.Logger
}

// NewAssistService creates a new assist service with the provided dependencies.
func NewAssistService(cfg AssistServiceConfig) *AssistService {
	return &AssistService{
		generator: cfg.Generator,
		tags:      cfg.Tags,
		logger:    cfg.Logger,
	}
}

// SuggestTags proposes up to 5 tags for a quote text, biased toward
// the existing vocabulary. Inputs under 10 characters and generation
// failures both yield an empty list.
func (s *AssistService) SuggestTags(ctx context.Context, text, authorName string) ([]string, error) {
	text = strings.TrimSpace(text)
	if len(text) < minAssistInputLength {
		return []string{}, nil
	}

	vocabulary, err := s.tags.Names(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load tag vocabulary for suggestions",
			slog.Any("error", err),
		)

		vocabulary = nil
	}

	response, err := s.generator.Generate(ctx, suggestTagsPrompt(text, authorName, vocabulary))
	if err != nil {
		s.logger.WarnContext(ctx, "tag suggestion generation failed",
			slog.Any("error", err),
		)

		return []string{}, nil
	}

	return parseSuggestedTags(response), nil
}

// LookupQuote asks the model to identify the full quote behind a
// fragment. An unparseable model response is reported as a
// not-identified result, not an error.
func (s *AssistService) LookupQuote(ctx context.Context, partial string) (*domain.QuoteLookup, error) {
	partial = strings.TrimSpace(partial)
	if len(partial) < minAssistInputLength {
		return nil, domain.NewValidationError("partial", "enter at least 10 characters of the quote")
	}

	vocabulary, err := s.tags.Names(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load tag vocabulary for lookup",
			slog.Any("error", err),
		)

		vocabulary = nil
	}

	response, err := s.generator.Generate(ctx, lookupQuotePrompt(partial, vocabulary))
	if err != nil {
		s.logger.ErrorContext(ctx, "quote lookup generation failed",
			slog.Any("error", err),
		)

		return nil, err
	}

	return parseQuoteLookup(response), nil
}

func suggestTagsPrompt(text, authorName string, vocabulary []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this quote and suggest 2-5 relevant tags for categorization.\n\n")
	fmt.Fprintf(&b, "Quote: %q\n", text)

	if authorName != "" {
		fmt.Fprintf(&b, "Author: %s\n", authorName)
	}

	fmt.Fprintf(&b, "\nExisting tags in the system (prefer these when applicable): %s\n\n",
		strings.Join(vocabulary, ", "))
	b.WriteString(`Rules:
- Return ONLY a JSON array of lowercase tag strings, nothing else
- Tags should be single words or short phrases (1-3 words max)
- Focus on themes, topics, emotions, or concepts
- Prefer existing tags when they fit
- If suggesting new tags, keep them general and reusable
- Examples of good tags: wisdom, leadership, perseverance, mindfulness, creativity, success, love, courage

Response format (JSON array only):
["tag1", "tag2", "tag3"]`)

	return b.String()
}

func lookupQuotePrompt(partial string, vocabulary []string) string {
	var b strings.Builder

	b.WriteString("You are a quote identification expert. Given a partial or full quote, identify the famous quote and provide complete information about it.\n\n")
	fmt.Fprintf(&b, "Partial quote provided: %q\n\n", partial)
	b.WriteString(`Your task:
1. Identify what famous quote this is from
2. Provide the complete, accurate quote text
3. Identify the author
4. Identify the source (book, speech, play, movie, etc.) if known
5. Suggest 3-5 relevant tags for categorization

`)
	fmt.Fprintf(&b, "Existing tags in the system (prefer these when applicable): %s\n\n",
		strings.Join(vocabulary, ", "))
	b.WriteString(`IMPORTANT:
- Only identify quotes you are confident about
- The quote text should be the complete, accurate version
- If this doesn't match any famous quote you know, set found to false

Respond with ONLY a JSON object in this exact format, no other text:
{
  "found": true or false,
  "text": "The complete quote text",
  "authorName": "Author's full name",
  "source": "Book/Speech/Play title, year if known",
  "tags": ["tag1", "tag2", "tag3"],
  "confidence": "high" or "medium" or "low",
  "message": "Optional note about the quote (e.g., 'often misattributed' or 'from Act 3, Scene 1')"
}

If you cannot identify the quote, respond with:
{
  "found": false,
  "message": "Brief explanation of why the quote couldn't be identified"
}`)

	return b.String()
}

// parseSuggestedTags extracts a tag list from a model response.
// It expects a JSON array but falls back to scraping quoted strings
// when the model wraps or mangles the output.
func parseSuggestedTags(response string) []string {
	clean := stripCodeFences(response)

	var raw []string
	if err := json.Unmarshal([]byte(clean), &raw); err == nil {
		return cleanTags(raw)
	}

	var scraped []string
	for _, match := range quotedPattern.FindAllStringSubmatch(clean, -1) {
		scraped = append(scraped, match[1])
	}

	return cleanTags(scraped)
}

// parseQuoteLookup decodes the structured lookup response, tolerating
// the fields the model most often gets wrong.
func parseQuoteLookup(response string) *domain.QuoteLookup {
	clean := stripCodeFences(response)

	var raw struct {
		Found      bool     `json:"found"`
		Text       string   `json:"text"`
		AuthorName string   `json:"authorName"`
		Source     any      `json:"source"`
		Tags       []string `json:"tags"`
		Confidence string   `json:"confidence"`
		Message    string   `json:"message"`
	}

	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return &domain.QuoteLookup{
			Found:   false,
			Message: "Failed to parse AI response. Please try again.",
		}
	}

	result := &domain.QuoteLookup{
		Found:      raw.Found,
		Text:       raw.Text,
		AuthorName: raw.AuthorName,
		Confidence: raw.Confidence,
		Message:    raw.Message,
	}

	// Models occasionally return null or an object for source.
	if source, ok := raw.Source.(string); ok {
		result.Source = source
	}

	if result.Found && result.Text != "" && result.AuthorName != "" {
		result.Tags = cleanTags(raw.Tags)
	}

	return result
}

// cleanTags normalizes, bounds, deduplicates, and clamps a tag list to
// at most 5 entries.
func cleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, maxSuggestedTags)

	for _, tag := range tags {
		name := domain.NormalizeTagName(tag)
		if name == "" || len(name) >= maxTagLength {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		out = append(out, name)
		if len(out) == maxSuggestedTags {
			break
		}
	}

	return out
}

func stripCodeFences(s string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(strings.TrimSpace(s), ""))
}
