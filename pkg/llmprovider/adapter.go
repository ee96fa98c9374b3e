package llmprovider

import (
	"context"

	"ai-health-platform/pkg/gemini"
	"ai-health-platform/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		SystemInstruction: convertToGroqMessage(req.SystemInstruction),
		Messages:          convertToGroqMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content: Message{
			Role: resp.Content.Role,
			Text: resp.Content.Text,
		},
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessage(m *Message) *groq.Message {
	if m == nil {
		return nil
	}
	return &groq.Message{Role: m.Role, Text: m.Text}
}

func convertToGroqMessages(msgs []Message) []groq.Message {
	out := make([]groq.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, groq.Message{Role: m.Role, Text: m.Text})
	}
	return out
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiMessage(req.SystemInstruction),
		Messages:          convertToGeminiMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content: Message{
			Role: "assistant",
			Text: resp.Content.Text,
		},
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiMessage(m *Message) *gemini.Message {
	if m == nil {
		return nil
	}
	return &gemini.Message{Role: m.Role, Text: m.Text}
}

func convertToGeminiMessages(msgs []Message) []gemini.Message {
	out := make([]gemini.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, gemini.Message{Role: m.Role, Text: m.Text})
	}
	return out
}
