package scope_test

import (
	"errors"
	"testing"
	"time"

	"ai-health-platform/pkg/scope"
)

const testSecret = "unit-test-secret-0123456789abcdef-padding"

func newTestManager(t *testing.T, accessTTL time.Duration) scope.Manager {
	t.Helper()
	m, err := scope.New(scope.Config{
		Secret:    testSecret,
		Issuer:    "test",
		AccessTTL: accessTTL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	return m
}

func TestManager(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		m := newTestManager(t, time.Minute)

		pair, err := m.IssuePair("user-1", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty token pair")
		}

		sc, err := m.Verify(pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if sc.UserID != "user-1" || sc.Email != "a@b.com" {
			t.Errorf("unexpected scope: %+v", sc)
		}
	})

	t.Run("Refresh Token Rejected As Access", func(t *testing.T) {
		m := newTestManager(t, time.Minute)

		pair, _ := m.IssuePair("user-1", "a@b.com")
		if _, err := m.Verify(pair.RefreshToken); !errors.Is(err, scope.ErrWrongType) {
			t.Errorf("expected ErrWrongType, got %v", err)
		}
		if _, err := m.VerifyRefresh(pair.RefreshToken); err != nil {
			t.Errorf("unexpected refresh verify error: %v", err)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		m := newTestManager(t, -time.Minute)

		pair, _ := m.IssuePair("user-1", "a@b.com")
		if _, err := m.Verify(pair.AccessToken); !errors.Is(err, scope.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		m := newTestManager(t, time.Minute)

		if _, err := m.Verify("not.a.token"); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Short Secret Rejected", func(t *testing.T) {
		if _, err := scope.New(scope.Config{Secret: "short"}); err == nil {
			t.Error("expected error for short secret")
		}
	})

	t.Run("Unset TTL Gets Default", func(t *testing.T) {
		m, err := scope.New(scope.Config{Secret: testSecret, Issuer: "test"})
		if err != nil {
			t.Fatalf("unexpected error creating manager: %v", err)
		}

		before := time.Now()
		pair, err := m.IssuePair("user-1", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Zero AccessTTL falls back to the 15-minute default; a negative
		// TTL must keep minting expired tokens (see Expired Token above).
		want := before.Add(15 * time.Minute)
		if pair.ExpiresAt.Before(want.Add(-time.Minute)) || pair.ExpiresAt.After(want.Add(time.Minute)) {
			t.Errorf("expires at %v, want about %v", pair.ExpiresAt, want)
		}
		if _, err := m.Verify(pair.AccessToken); err != nil {
			t.Errorf("unexpected verify error: %v", err)
		}
	})
}
