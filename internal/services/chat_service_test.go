package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func TestChatEmptyMessage(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\t"} {
		generator := &fakeGenerator{reply: "hello"}
		svc := NewChatService(generator)

		_, err := svc.Chat(context.Background(), message, nil)
		if !errors.Is(err, utils.ErrEmptyMessage) {
			t.Errorf("Chat(%q) err = %v, want ErrEmptyMessage", message, err)
		}
		if len(generator.prompts) != 0 {
			t.Errorf("gateway must not be invoked for empty messages, got %d calls", len(generator.prompts))
		}
	}
}

func TestChatContextReachesPrompt(t *testing.T) {
	generator := &fakeGenerator{reply: "Goa is lovely in January."}
	svc := NewChatService(generator)

	chatCtx := &request_models.ChatContext{
		Origin:      "Delhi",
		Destination: "Goa",
		Days:        3,
		Travelers:   2,
		Budget:      40000,
	}

	reply, err := svc.Chat(context.Background(), "What should I pack?", chatCtx)
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if reply != "Goa is lovely in January." {
		t.Errorf("reply = %q", reply)
	}

	if len(generator.prompts) != 1 {
		t.Fatalf("gateway called %d times, want 1", len(generator.prompts))
	}
	prompt := generator.prompts[0]
	for _, want := range []string{"Delhi", "Goa", "The user has planned a trip", "User: What should I pack?", "Assistant:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestChatExtendedContext(t *testing.T) {
	generator := &fakeGenerator{reply: "ok"}
	svc := NewChatService(generator)

	chatCtx := &request_models.ChatContext{
		Origin:      "Delhi",
		Destination: "Goa",
		Days:        1,
		Travelers:   1,
		Budget:      10000,
		Weather:     "Humid",
		Itinerary: []response_models.DayPlan{
			{Day: 1, Morning: "Baga Beach", Afternoon: "Fort Aguada", Evening: "Night market"},
		},
	}

	if _, err := svc.Chat(context.Background(), "anything else?", chatCtx); err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	prompt := generator.prompts[0]
	for _, want := range []string{"Humid", "Baga Beach", "Fort Aguada", "Day 1"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("extended context missing %q:\n%s", want, prompt)
		}
	}
}

func TestChatNoContext(t *testing.T) {
	generator := &fakeGenerator{reply: "  hi there \n"}
	svc := NewChatService(generator)

	reply, err := svc.Chat(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if reply != "hi there" {
		t.Errorf("reply not trimmed: %q", reply)
	}
	if strings.Contains(generator.prompts[0], "The user has planned a trip") {
		t.Error("context block rendered without a context")
	}
}

func TestChatGatewayFailure(t *testing.T) {
	svc := NewChatService(&fakeGenerator{err: errors.New("timeout")})

	_, err := svc.Chat(context.Background(), "hello", nil)
	if !errors.Is(err, utils.ErrAssistantUnavailable) {
		t.Errorf("err = %v, want ErrAssistantUnavailable", err)
	}
}
