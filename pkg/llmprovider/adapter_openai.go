package llmprovider

import (
	"context"
	"strings"

	"ai-health-platform/pkg/deepseek"
	"ai-health-platform/pkg/qwen"
)

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          convertToQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	var parts []string
	for _, p := range resp.Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}

	out := &Response{
		Content: Message{
			Role: "assistant",
			Text: strings.Join(parts, ""),
		},
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func convertToQwenContent(m *Message) *qwen.Content {
	if m == nil {
		return nil
	}
	return &qwen.Content{Role: m.Role, Parts: []qwen.Part{{Text: m.Text}}}
}

func convertToQwenContents(msgs []Message) []qwen.Content {
	out := make([]qwen.Content, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, qwen.Content{Role: m.Role, Parts: []qwen.Part{{Text: m.Text}}})
	}
	return out
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
	model  string
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek, model string) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.SystemInstruction.Text})
	}
	for _, m := range req.Messages {
		messages = append(messages, deepseek.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Model:       a.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Content: Message{
			Role: "assistant",
			Text: text,
		},
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.model
}
