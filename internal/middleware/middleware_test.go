package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-health-platform/config"
	"ai-health-platform/internal/model"
	"ai-health-platform/pkg/scope"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

type mockJWTManager struct {
	sc  model.Scope
	err error
}

func (m *mockJWTManager) IssuePair(userID, email string) (scope.TokenPair, error) {
	return scope.TokenPair{}, nil
}

func (m *mockJWTManager) Verify(token string) (model.Scope, error) {
	if m.err != nil {
		return model.Scope{}, m.err
	}
	return m.sc, nil
}

func (m *mockJWTManager) VerifyRefresh(token string) (model.Scope, error) {
	return m.Verify(token)
}

func newTestRouter(handler gin.HandlerFunc, middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", append(middlewares, handler)...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	okHandler := func(c *gin.Context) {
		sc, _ := scope.FromContext(c)
		c.String(http.StatusOK, sc.UserID)
	}

	t.Run("valid token attaches scope", func(t *testing.T) {
		mw := New(mockLogger{}, &mockJWTManager{sc: model.Scope{UserID: "u1"}}, &config.Config{})
		r := newTestRouter(okHandler, mw.Auth())

		w := doGet(r, "Bearer token")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "u1" {
			t.Errorf("user id = %q, want u1", w.Body.String())
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		mw := New(mockLogger{}, &mockJWTManager{}, &config.Config{})
		r := newTestRouter(okHandler, mw.Auth())

		if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		mw := New(mockLogger{}, &mockJWTManager{err: errors.New("bad")}, &config.Config{})
		r := newTestRouter(okHandler, mw.Auth())

		if w := doGet(r, "Bearer nope"); w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("optional auth lets anonymous through", func(t *testing.T) {
		mw := New(mockLogger{}, &mockJWTManager{err: errors.New("bad")}, &config.Config{})
		r := newTestRouter(okHandler, mw.OptionalAuth())

		w := doGet(r, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("user id = %q, want empty for anonymous", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.PublicPerMin = 60
	cfg.RateLimit.Burst = 2

	mw := New(mockLogger{}, &mockJWTManager{}, cfg)
	r := newTestRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, mw.RateLimit())

	// Burst of 2 passes, the third request in the same instant is throttled.
	for i := 0; i < 2; i++ {
		if w := doGet(r, ""); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
	if w := doGet(r, ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", w.Code)
	}
}
