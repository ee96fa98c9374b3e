package auth

import (
	"time"

	"ai-health-platform/pkg/scope"
)

// --- User Domain Model ---

// User is the account entity. Profile fields are optional until the user
// completes onboarding.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	FullName       string
	Age            *int
	Gender         *string
	Height         *float64
	Weight         *float64
	IsActive       bool
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOnboarded reports whether the basic profile has been filled in
func (u User) IsOnboarded() bool {
	return u.Age != nil && u.Gender != nil && u.Height != nil && u.Weight != nil
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Age      *int
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	FullName *string
	Age      *int
	Gender   *string
	Height   *float64
	Weight   *float64
}

// --- UseCase Outputs ---

type UserOutput struct {
	User User
}

type LoginOutput struct {
	User   User
	Tokens scope.TokenPair
}
