package dashboard

import (
	"context"

	"ai-health-platform/internal/model"
)

type UseCase interface {
	Summary(ctx context.Context, sc model.Scope) (Summary, error)
}
