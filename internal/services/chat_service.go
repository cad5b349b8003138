package services

import (
	"context"
	"fmt"
	"strings"

	"voyago/internal/infra"
	"voyago/internal/models/request_models"
	"voyago/pkg/logger"
	"voyago/pkg/utils"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, message string, chatCtx *request_models.ChatContext) (string, error)
}

type ChatService struct {
	generator infra.TextGenerator
}

func NewChatService(generator infra.TextGenerator) ChatServiceInterface {
	return &ChatService{
		generator: generator,
	}
}

// Chat relays one user message to the model, prefixed with whatever trip
// context the caller supplied. Unlike trip planning there is no meaningful
// fallback reply, so a gateway failure surfaces as an error.
func (s *ChatService) Chat(ctx context.Context, message string, chatCtx *request_models.ChatContext) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrEmptyMessage
	}

	prompt := renderChatContext(chatCtx) + "\nUser: " + message + "\nAssistant:"

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Errorf("Chatbot error: %v", err)
		return "", utils.ErrAssistantUnavailable
	}

	return strings.TrimSpace(reply), nil
}

// renderChatContext turns the caller's trip snapshot into a fixed-format
// text block. Weather and the itinerary only appear when the caller sent
// them (the extended contract).
func renderChatContext(chatCtx *request_models.ChatContext) string {
	if chatCtx.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("The user has planned a trip:\n")
	fmt.Fprintf(&b, "- From: %s\n", chatCtx.Origin)
	fmt.Fprintf(&b, "- To: %s\n", chatCtx.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", chatCtx.Days)
	fmt.Fprintf(&b, "- Travelers: %d\n", chatCtx.Travelers)
	fmt.Fprintf(&b, "- Budget: ₹%.0f\n", chatCtx.Budget)

	if chatCtx.Weather != "" {
		fmt.Fprintf(&b, "- Weather: %s\n", chatCtx.Weather)
	}
	if len(chatCtx.Itinerary) > 0 {
		b.WriteString("- Itinerary:\n")
		for _, day := range chatCtx.Itinerary {
			fmt.Fprintf(&b, "  Day %d: morning: %s; afternoon: %s; evening: %s\n",
				day.Day, day.Morning, day.Afternoon, day.Evening)
		}
	}

	return b.String()
}
