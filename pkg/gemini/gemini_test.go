package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	t.Run("Successful Generation", func(t *testing.T) {
		var gotReq geminiRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotReq)

			json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []geminiCandidate{
					{Content: geminiContent{Role: "model", Parts: []geminiPart{{Text: "response text"}}}},
				},
				UsageMetadata: geminiUsageMetadata{PromptTokenCount: 7, CandidatesTokenCount: 3, TotalTokenCount: 10},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Message{Text: "you are terse"},
			Messages: []Message{
				{Role: "user", Text: "question"},
				{Role: "assistant", Text: "earlier answer"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotReq.SystemInstruction == nil {
			t.Error("expected system instruction in wire request")
		}
		// assistant role must be mapped to "model" on the wire
		if gotReq.Contents[1].Role != "model" {
			t.Errorf("expected role model, got %s", gotReq.Contents[1].Role)
		}
		if resp.Content.Text != "response text" {
			t.Errorf("unexpected content: %s", resp.Content.Text)
		}
		if resp.Usage.TotalTokens != 10 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(geminiResponse{})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: server.URL})
		if _, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		}); err == nil {
			t.Error("expected error for empty candidates")
		}
	})

	t.Run("Config Validation", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("expected error for missing api key")
		}
	})
}
