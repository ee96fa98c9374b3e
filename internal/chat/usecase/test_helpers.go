package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-health-platform/internal/chat"
	repo "ai-health-platform/internal/chat/repository"
	"ai-health-platform/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	messages []chat.Message
	err      error
}

func (m *mockRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (chat.Message, error) {
	if m.err != nil {
		return chat.Message{}, m.err
	}
	msg := chat.Message{
		ID:         fmt.Sprintf("msg-%d", len(m.messages)+1),
		UserID:     opt.UserID,
		Role:       opt.Role,
		Content:    opt.Content,
		TokensUsed: opt.TokensUsed,
		ModelUsed:  opt.ModelUsed,
		CreatedAt:  time.Now(),
	}
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *mockRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]chat.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []chat.Message
	for _, msg := range m.messages {
		if msg.UserID == opt.UserID {
			out = append(out, msg)
		}
	}
	if opt.Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

// Mock generator for testing
type mockGenerator struct {
	reply    string
	err      error
	requests []*llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Text: m.reply},
		ProviderName: "groq",
		ModelName:    "llama-3.3-70b-versatile",
		Usage:        &llmprovider.Usage{InputTokens: 20, OutputTokens: 30, TotalTokens: 50},
	}, nil
}
