package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing api key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base url, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default http client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Successful Completion", func(t *testing.T) {
		var gotAuth string
		var gotReq openAIRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotReq)

			json.NewEncoder(w).Encode(openAIResponse{
				Model: "qwen-test",
				Choices: []openAIChoice{
					{Message: openAIMessage{Role: "assistant", Content: "hello back"}},
				},
				Usage: openAIUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", Model: "qwen-plus", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Content{Role: "user", Parts: []Part{{Text: "be brief"}}},
			Messages:          []Content{{Role: "user", Parts: []Part{{Text: "hello"}}}},
			Temperature:       0.7,
			MaxTokens:         100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", gotAuth)
		}
		if gotReq.Model != "qwen-plus" {
			t.Errorf("unexpected model: %s", gotReq.Model)
		}
		if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
			t.Errorf("system instruction not prepended: %+v", gotReq.Messages)
		}
		if gotReq.Messages[1].Content != "hello" {
			t.Errorf("unexpected user message: %+v", gotReq.Messages[1])
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "hello back" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 15 || resp.Usage.InputTokens != 10 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Multi Part Message Joined", func(t *testing.T) {
		var gotReq openAIRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotReq)
			json.NewEncoder(w).Encode(openAIResponse{
				Choices: []openAIChoice{{Message: openAIMessage{Role: "assistant", Content: "ok"}}},
			})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if _, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "first"}, {Text: "second"}}}},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "first\nsecond" {
			t.Errorf("parts not joined with newline: %+v", gotReq.Messages)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if _, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		}); err == nil {
			t.Error("expected error for non-200 response")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openAIResponse{})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 0 {
			t.Errorf("expected empty content, got %+v", resp.Content)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 0 {
			t.Errorf("expected zero usage, got %+v", resp.Usage)
		}
	})
}
