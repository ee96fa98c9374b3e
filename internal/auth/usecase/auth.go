package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"ai-health-platform/internal/auth"
	repo "ai-health-platform/internal/auth/repository"
)

// Register creates a new account after checking for email uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.UserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.UserOutput{}, err
	}
	if existing.ID != "" {
		return auth.UserOutput{}, auth.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return auth.UserOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:          input.Email,
		HashedPassword: string(hashed),
		FullName:       input.FullName,
		Age:            input.Age,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.UserOutput{}, err
	}

	return auth.UserOutput{User: user}, nil
}

// Login verifies credentials and issues a JWT pair.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if !user.IsActive {
		return auth.LoginOutput{}, auth.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	tokens, err := uc.jwtManager.IssuePair(user.ID, user.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login IssuePair: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a fresh JWT pair.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (auth.LoginOutput, error) {
	sc, err := uc.jwtManager.VerifyRefresh(refreshToken)
	if err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if !user.IsActive {
		return auth.LoginOutput{}, auth.ErrAccountDisabled
	}

	tokens, err := uc.jwtManager.IssuePair(user.ID, user.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh IssuePair: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{User: user, Tokens: tokens}, nil
}
