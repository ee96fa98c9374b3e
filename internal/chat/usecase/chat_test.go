package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-health-platform/internal/chat"
	"ai-health-platform/internal/intent"
	"ai-health-platform/internal/model"
)

func newTestUseCase(t *testing.T, gen *mockGenerator) (*implUseCase, *mockRepository) {
	t.Helper()
	memory, err := chat.NewSessionMemory()
	if err != nil {
		t.Fatalf("NewSessionMemory failed: %v", err)
	}
	repo := &mockRepository{}
	return New(repo, gen, memory, &mockLogger{}), repo
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("classifies, replies, and persists both turns", func(t *testing.T) {
		gen := &mockGenerator{reply: "Getting 7-8 hours of sleep helps a lot."}
		uc, repo := newTestUseCase(t, gen)

		output, err := uc.Chat(ctx, sc, chat.ChatInput{Message: "I feel so tired and can't sleep at night"})
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if output.Intent != intent.IntentSleepFatigue {
			t.Errorf("Expected sleep_fatigue intent, got: %s", output.Intent)
		}
		if output.Reply != gen.reply {
			t.Errorf("Unexpected reply: %q", output.Reply)
		}
		if len(repo.messages) != 2 {
			t.Fatalf("Expected 2 persisted turns, got: %d", len(repo.messages))
		}
		if repo.messages[0].Role != "user" || repo.messages[1].Role != "assistant" {
			t.Errorf("Unexpected roles: %s, %s", repo.messages[0].Role, repo.messages[1].Role)
		}
		if repo.messages[1].TokensUsed == nil || *repo.messages[1].TokensUsed != 50 {
			t.Errorf("Expected token usage on the assistant row, got: %v", repo.messages[1].TokensUsed)
		}
	})

	t.Run("system prompt carries the intent and history", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		uc, repo := newTestUseCase(t, gen)
		repo.messages = []chat.Message{
			{ID: "m1", UserID: "user-1", Role: "user", Content: "how do I manage blood sugar"},
			{ID: "m2", UserID: "user-1", Role: "assistant", Content: "Watch carbohydrate intake."},
		}

		if _, err := uc.Chat(ctx, sc, chat.ChatInput{Message: "what about insulin levels"}); err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if len(gen.requests) != 1 {
			t.Fatalf("Expected 1 LLM call, got: %d", len(gen.requests))
		}
		req := gen.requests[0]
		if req.SystemInstruction == nil {
			t.Fatal("Expected a system instruction")
		}
		if !strings.Contains(req.SystemInstruction.Text, "CONVERSATION HISTORY") {
			t.Error("Expected the prior turns to be replayed into the prompt")
		}
		// prior 2 turns + current message
		if len(req.Messages) != 3 {
			t.Errorf("Expected 3 request messages, got: %d", len(req.Messages))
		}
		if req.Messages[2].Text != "what about insulin levels" {
			t.Errorf("Expected the current message last, got: %q", req.Messages[2].Text)
		}
	})

	t.Run("llm failure surfaces and persists nothing", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("provider down")}
		uc, repo := newTestUseCase(t, gen)

		if _, err := uc.Chat(ctx, sc, chat.ChatInput{Message: "hello"}); err == nil {
			t.Fatal("Expected an error when the LLM fails")
		}
		if len(repo.messages) != 0 {
			t.Errorf("Expected no persisted turns on failure, got: %d", len(repo.messages))
		}
	})
}

func TestPublicChat(t *testing.T) {
	ctx := context.Background()

	t.Run("answers without persistence", func(t *testing.T) {
		gen := &mockGenerator{reply: "Aim for balanced meals."}
		uc, repo := newTestUseCase(t, gen)

		output := uc.PublicChat(ctx, "session-1", chat.ChatInput{Message: "what should I eat for a healthy diet"})
		if output.Reply != gen.reply {
			t.Errorf("Unexpected reply: %q", output.Reply)
		}
		if output.Intent != intent.IntentNutritionDiet {
			t.Errorf("Expected nutrition_diet intent, got: %s", output.Intent)
		}
		if output.Fallback {
			t.Error("Expected a live reply, not a fallback")
		}
		if len(repo.messages) != 0 {
			t.Errorf("Public chat must not persist, got %d rows", len(repo.messages))
		}
	})

	t.Run("degrades to an intent-aware fallback on llm failure", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("provider down")}
		uc, _ := newTestUseCase(t, gen)

		output := uc.PublicChat(ctx, "session-1", chat.ChatInput{Message: "what should I eat for a healthy diet"})
		if !output.Fallback {
			t.Fatal("Expected a fallback reply")
		}
		if output.Reply == "" {
			t.Fatal("Fallback reply must not be empty")
		}
		if output.Reply != intent.FallbackReply(intent.IntentNutritionDiet) {
			t.Errorf("Expected the nutrition fallback, got: %q", output.Reply)
		}
	})

	t.Run("session memory feeds later turns", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		uc, _ := newTestUseCase(t, gen)

		uc.PublicChat(ctx, "session-2", chat.ChatInput{Message: "tell me about diabetes and blood sugar"})
		uc.PublicChat(ctx, "session-2", chat.ChatInput{Message: "anything else"})

		if len(gen.requests) != 2 {
			t.Fatalf("Expected 2 LLM calls, got: %d", len(gen.requests))
		}
		// second call replays the first exchange (2 turns) plus the new message
		if len(gen.requests[1].Messages) != 3 {
			t.Errorf("Expected 3 messages on the second call, got: %d", len(gen.requests[1].Messages))
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		gen := &mockGenerator{reply: "ok"}
		uc, _ := newTestUseCase(t, gen)

		uc.PublicChat(ctx, "session-a", chat.ChatInput{Message: "tell me about diabetes and blood sugar"})
		uc.PublicChat(ctx, "session-b", chat.ChatInput{Message: "anything else"})

		if len(gen.requests[1].Messages) != 1 {
			t.Errorf("Expected a fresh session to carry only the new message, got: %d", len(gen.requests[1].Messages))
		}
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{reply: "ok"}
	uc, repo := newTestUseCase(t, gen)
	repo.messages = []chat.Message{
		{ID: "m1", UserID: "user-1", Role: "user", Content: "first"},
		{ID: "m2", UserID: "user-1", Role: "assistant", Content: "second"},
		{ID: "m3", UserID: "other", Role: "user", Content: "not mine"},
	}

	history, err := uc.History(ctx, model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 rows, got: %d", len(history))
	}
	if history[0].Content != "first" {
		t.Errorf("Expected oldest first, got: %q", history[0].Content)
	}
}
