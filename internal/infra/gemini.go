package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextGenerator implements TextGenerator using Google's Gemini models.
type GeminiTextGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiTextGenerator(apiKey, model string, timeout time.Duration) (*GeminiTextGenerator, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (g *GeminiTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(8192)

	ctx, cancel := withDeadline(ctx, g.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	return text, nil
}

func (g *GeminiTextGenerator) Close() error {
	return g.client.Close()
}
