// Package gemini adapts the Google Gemini API to the TextGenerator port.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"wisdomhub/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator implements ports.TextGenerator on the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
}

// Config contains configuration for the Gemini generator.
type Config struct {
	APIKey string
	Model  string
}

// New creates a Gemini-backed text generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Generator{client: client, model: model}, nil
}

// Generate sends the prompt to the configured model and returns the
// response text. Failures are reported as domain.ErrUnavailable so
// callers can decide how gracefully to degrade.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", domain.NewUnavailableError("gemini", err.Error())
	}

	text := result.Text()
	if text == "" {
		return "", domain.NewUnavailableError("gemini", "empty model response")
	}

	return text, nil
}
