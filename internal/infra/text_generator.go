package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyago/internal/config"
)

// TextGenerator is the single-shot completion contract the orchestrators
// depend on. One prompt in, raw model text out. No streaming, no retries.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator picks the provider from config. Factory mirrors the
// provider switch used for the embedding clients it replaced.
func NewTextGenerator(cfg *config.Config) (TextGenerator, error) {
	switch strings.ToLower(cfg.AIProvider) {
	case "gemini":
		return NewGeminiTextGenerator(cfg.GeminiKey, cfg.GeminiModel, cfg.AITimeout)
	case "openai":
		return NewOpenAITextGenerator(cfg.OpenAIKey, cfg.OpenAIModel, cfg.AITimeout), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AIProvider)
	}
}

// withDeadline bounds an external call; a hung provider must not hang the
// request forever.
func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
