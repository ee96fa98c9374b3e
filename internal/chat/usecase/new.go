package usecase

import (
	"context"

	"ai-health-platform/internal/chat"
	"ai-health-platform/internal/chat/repository"
	"ai-health-platform/pkg/llmprovider"
	"ai-health-platform/pkg/log"
)

const (
	// historyWindow is how many persisted rows feed the prompt context.
	historyWindow = 10

	chatTemperature = 0.7
	chatMaxTokens   = 500
)

// contentGenerator is the slice of llmprovider.Manager the chat flow needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo   repository.Repository
	llm    contentGenerator
	memory *chat.SessionMemory
	l      log.Logger
}

// New creates a new chat UseCase implementation.
func New(repo repository.Repository, llm contentGenerator, memory *chat.SessionMemory, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		llm:    llm,
		memory: memory,
		l:      l,
	}
}
