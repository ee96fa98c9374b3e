package llmprovider

import (
	"context"
	"errors"
	"testing"

	"ai-health-platform/pkg/deepseek"
	"ai-health-platform/pkg/qwen"
)

type fakeQwenClient struct {
	gotReq *qwen.Request
	resp   *qwen.Response
	err    error
}

func (f *fakeQwenClient) GenerateContent(ctx context.Context, req *qwen.Request) (*qwen.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeQwenClient) Model() string { return "qwen-plus" }

func TestQwenAdapter(t *testing.T) {
	t.Run("Converts Request And Response", func(t *testing.T) {
		client := &fakeQwenClient{resp: &qwen.Response{
			Content: qwen.Content{Role: "assistant", Parts: []qwen.Part{{Text: "hello "}, {Text: "back"}}},
			Usage:   &qwen.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}}
		adapter := NewQwenAdapter(client)

		resp, err := adapter.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Message{Role: "system", Text: "be brief"},
			Messages:          []Message{{Role: "user", Text: "hello"}},
			Temperature:       0.7,
			MaxTokens:         100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if client.gotReq.SystemInstruction == nil ||
			len(client.gotReq.SystemInstruction.Parts) != 1 ||
			client.gotReq.SystemInstruction.Parts[0].Text != "be brief" {
			t.Errorf("system instruction not converted: %+v", client.gotReq.SystemInstruction)
		}
		if len(client.gotReq.Messages) != 1 || client.gotReq.Messages[0].Parts[0].Text != "hello" {
			t.Errorf("messages not converted: %+v", client.gotReq.Messages)
		}
		if client.gotReq.Temperature != 0.7 || client.gotReq.MaxTokens != 100 {
			t.Errorf("generation params dropped: %+v", client.gotReq)
		}

		if resp.Content.Role != "assistant" || resp.Content.Text != "hello back" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.ProviderName != "qwen" || resp.ModelName != "qwen-plus" {
			t.Errorf("unexpected provenance: %s/%s", resp.ProviderName, resp.ModelName)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Wraps Provider Error", func(t *testing.T) {
		adapter := NewQwenAdapter(&fakeQwenClient{err: errors.New("boom")})

		_, err := adapter.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		var provErr *ProviderError
		if !errors.As(err, &provErr) || provErr.Provider != "qwen" {
			t.Errorf("expected qwen ProviderError, got %v", err)
		}
	})
}

type fakeDeepSeekClient struct {
	gotReq *deepseek.Request
	resp   *deepseek.Response
	err    error
}

func (f *fakeDeepSeekClient) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestDeepSeekAdapter(t *testing.T) {
	t.Run("Converts Request And Response", func(t *testing.T) {
		client := &fakeDeepSeekClient{resp: &deepseek.Response{
			Choices: []deepseek.Choice{
				{Message: deepseek.Message{Role: "assistant", Content: "hello back"}},
			},
			Usage: deepseek.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}}
		adapter := NewDeepSeekAdapter(client, "deepseek-chat")

		resp, err := adapter.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Message{Role: "system", Text: "be brief"},
			Messages:          []Message{{Role: "user", Text: "hello"}},
			Temperature:       0.7,
			MaxTokens:         100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if client.gotReq.Model != "deepseek-chat" {
			t.Errorf("model not set: %s", client.gotReq.Model)
		}
		if len(client.gotReq.Messages) != 2 ||
			client.gotReq.Messages[0].Role != "system" ||
			client.gotReq.Messages[0].Content != "be brief" {
			t.Errorf("system instruction not folded in: %+v", client.gotReq.Messages)
		}
		if client.gotReq.Messages[1].Content != "hello" {
			t.Errorf("user message not converted: %+v", client.gotReq.Messages[1])
		}

		if resp.Content.Text != "hello back" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.ProviderName != "deepseek" || resp.ModelName != "deepseek-chat" {
			t.Errorf("unexpected provenance: %s/%s", resp.ProviderName, resp.ModelName)
		}
		if resp.Usage == nil || resp.Usage.InputTokens != 10 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Empty Choices Yield Empty Text", func(t *testing.T) {
		client := &fakeDeepSeekClient{resp: &deepseek.Response{}}
		adapter := NewDeepSeekAdapter(client, "deepseek-chat")

		resp, err := adapter.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "" {
			t.Errorf("expected empty text, got %q", resp.Content.Text)
		}
	})

	t.Run("Wraps Provider Error", func(t *testing.T) {
		adapter := NewDeepSeekAdapter(&fakeDeepSeekClient{err: errors.New("boom")}, "deepseek-chat")

		_, err := adapter.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		var provErr *ProviderError
		if !errors.As(err, &provErr) || provErr.Provider != "deepseek" {
			t.Errorf("expected deepseek ProviderError, got %v", err)
		}
	})
}
