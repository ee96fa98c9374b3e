package repository

import (
	"context"

	"ai-health-platform/internal/auth"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (auth.User, error)
	ListActiveUserIDs(ctx context.Context) ([]string, error)
}
