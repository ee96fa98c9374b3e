package auth

import (
	"context"

	"ai-health-platform/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (UserOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (UserOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UserOutput, error)
}
