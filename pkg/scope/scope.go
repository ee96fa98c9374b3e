package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ai-health-platform/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongType    = errors.New("wrong token type")
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// Manager issues and verifies JWTs carrying a model.Scope.
type Manager interface {
	IssuePair(userID, email string) (TokenPair, error)
	Verify(token string) (model.Scope, error)
	VerifyRefresh(token string) (model.Scope, error)
}

// Config configures the JWT manager.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Validate checks required fields and applies TTL defaults to unset TTLs.
// Non-zero TTLs are honored as given; a negative TTL mints already-expired
// tokens.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("scope: secret is required")
	}
	if len(c.Secret) < 32 {
		return errors.New("scope: secret must be at least 32 characters")
	}
	if c.AccessTTL == 0 {
		c.AccessTTL = 15 * time.Minute
	}
	if c.RefreshTTL == 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
	return nil
}

type claims struct {
	Email string    `json:"email"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// New creates a JWT Manager with the given configuration.
func New(cfg Config) (Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &implManager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}, nil
}

// IssuePair signs a new access/refresh token pair for the given user.
func (m *implManager) IssuePair(userID, email string) (TokenPair, error) {
	now := time.Now()
	accessExp := now.Add(m.accessTTL)

	access, err := m.sign(userID, email, TokenTypeAccess, now, accessExp)
	if err != nil {
		return TokenPair{}, fmt.Errorf("scope: sign access token: %w", err)
	}

	refresh, err := m.sign(userID, email, TokenTypeRefresh, now, now.Add(m.refreshTTL))
	if err != nil {
		return TokenPair{}, fmt.Errorf("scope: sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExp,
		TokenType:    "bearer",
	}, nil
}

// Verify validates an access token and returns the embedded scope.
func (m *implManager) Verify(token string) (model.Scope, error) {
	return m.verify(token, TokenTypeAccess)
}

// VerifyRefresh validates a refresh token and returns the embedded scope.
func (m *implManager) VerifyRefresh(token string) (model.Scope, error) {
	return m.verify(token, TokenTypeRefresh)
}

func (m *implManager) sign(userID, email string, typ TokenType, now, exp time.Time) (string, error) {
	c := claims{
		Email: email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

func (m *implManager) verify(token string, want TokenType) (model.Scope, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Scope{}, ErrExpiredToken
		}
		return model.Scope{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if c.Type != want {
		return model.Scope{}, ErrWrongType
	}

	return model.Scope{UserID: c.Subject, Email: c.Email}, nil
}
