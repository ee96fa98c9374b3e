package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("expected error for missing api key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		client, err := New(Config{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.model != DefaultModel {
			t.Errorf("expected default model, got %s", client.model)
		}
		if client.baseURL != DefaultBaseURL {
			t.Errorf("expected default base url, got %s", client.baseURL)
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Successful Completion", func(t *testing.T) {
		var gotAuth string
		var gotReq Request

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotReq)

			json.NewEncoder(w).Encode(Response{
				Model: "deepseek-test",
				Choices: []Choice{
					{Message: Message{Role: "assistant", Content: "hello back"}},
				},
				Usage: Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{
				{Role: "system", Content: "be brief"},
				{Role: "user", Content: "hello"},
			},
			Temperature: 0.7,
			MaxTokens:   100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", gotAuth)
		}
		if gotReq.Model != DefaultModel {
			t.Errorf("default model not filled in: %s", gotReq.Model)
		}
		if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
			t.Errorf("unexpected messages on the wire: %+v", gotReq.Messages)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hello back" {
			t.Errorf("unexpected content: %+v", resp.Choices)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Explicit Model Kept", func(t *testing.T) {
		var gotReq Request

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotReq)
			json.NewEncoder(w).Encode(Response{Choices: []Choice{{Message: Message{Content: "ok"}}}})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if _, err := client.GenerateContent(context.Background(), &Request{
			Model:    "deepseek-reasoner",
			Messages: []Message{{Role: "user", Content: "hi"}},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotReq.Model != "deepseek-reasoner" {
			t.Errorf("explicit model overridden: %s", gotReq.Model)
		}
	})

	t.Run("API Error Message Surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error": {"message": "insufficient quota", "type": "billing"}}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error for non-200 response")
		}
		if !strings.Contains(err.Error(), "insufficient quota") {
			t.Errorf("error does not carry the API message: %v", err)
		}
	})
}
