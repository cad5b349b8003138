package infra

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenerator implements TextGenerator with a chat completion call.
type OpenAITextGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAITextGenerator(apiKey, model string, timeout time.Duration) *OpenAITextGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextGenerator{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (o *OpenAITextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withDeadline(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
