package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// TextGenerator turns a prompt into model text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator implements TextGenerator with the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates the client once; it is safe for concurrent use.
// An empty apiKey is reported as ErrGenerationUnavailable so callers can
// fall back to canned text.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, temperature float32) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrGenerationUnavailable)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, temperature: temperature}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrGenerationUnavailable, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}
	return text, nil
}
