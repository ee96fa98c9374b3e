package usecase

import (
	"context"

	"ai-health-platform/internal/auth"
	repo "ai-health-platform/internal/auth/repository"
	"ai-health-platform/internal/model"
)

// Me returns the account for the authenticated scope.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.UserOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.UserOutput{}, err
	}
	if user.ID == "" {
		return auth.UserOutput{}, auth.ErrUserNotFound
	}
	return auth.UserOutput{User: user}, nil
}

// UpdateProfile applies a partial profile update for the authenticated user.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input auth.UpdateProfileInput) (auth.UserOutput, error) {
	user, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:       sc.UserID,
		FullName: input.FullName,
		Age:      input.Age,
		Gender:   input.Gender,
		Height:   input.Height,
		Weight:   input.Weight,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile UpdateUser: %v", err)
		return auth.UserOutput{}, err
	}
	if user.ID == "" {
		return auth.UserOutput{}, auth.ErrUserNotFound
	}
	return auth.UserOutput{User: user}, nil
}
