package http

import (
	"time"

	"ai-health-platform/internal/auth"
	"ai-health-platform/pkg/scope"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required,min=8,max=128"`
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Age      *int   `json:"age"       binding:"omitempty,gte=1,lte=120"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Age:      r.Age,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type updateProfileReq struct {
	FullName *string  `json:"full_name" binding:"omitempty,min=1,max=255"`
	Age      *int     `json:"age"       binding:"omitempty,gte=1,lte=120"`
	Gender   *string  `json:"gender"    binding:"omitempty,oneof=male female other"`
	Height   *float64 `json:"height"    binding:"omitempty,gt=0,lt=300"`
	Weight   *float64 `json:"weight"    binding:"omitempty,gt=0,lt=500"`
}

func (r updateProfileReq) toInput() auth.UpdateProfileInput {
	return auth.UpdateProfileInput{
		FullName: r.FullName,
		Age:      r.Age,
		Gender:   r.Gender,
		Height:   r.Height,
		Weight:   r.Weight,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Age         *int      `json:"age,omitempty"`
	Gender      *string   `json:"gender,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	IsOnboarded bool      `json:"is_onboarded"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResp(u auth.User) userResp {
	return userResp{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Age:         u.Age,
		Gender:      u.Gender,
		Height:      u.Height,
		Weight:      u.Weight,
		IsOnboarded: u.IsOnboarded(),
		CreatedAt:   u.CreatedAt,
	}
}

type loginResp struct {
	User   userResp        `json:"user"`
	Tokens scope.TokenPair `json:"tokens"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		User:   newUserResp(out.User),
		Tokens: out.Tokens,
	}
}
