package credential

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestMemStoreTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	if _, ok := s.Token(ctx); ok {
		t.Fatal("empty store reported a token")
	}

	s.SetToken(ctx, "opaque-token-value")
	tok, ok := s.Token(ctx)
	if !ok || tok != "opaque-token-value" {
		t.Fatalf("expected opaque-token-value, got %q (ok=%v)", tok, ok)
	}

	s.ClearToken(ctx)
	if _, ok := s.Token(ctx); ok {
		t.Fatal("token survived ClearToken")
	}
	// Clearing twice must not misbehave.
	s.ClearToken(ctx)
}

func TestMemStoreOpaqueTokenNotTreatedAsJWT(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	s.SetToken(ctx, "not.a.jwt")
	if _, ok := s.Token(ctx); !ok {
		t.Fatal("opaque token rejected")
	}
}

func TestMemStoreExpiredJWTReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	s.SetToken(ctx, signedToken(t, time.Now().Add(-time.Minute)))
	if _, ok := s.Token(ctx); ok {
		t.Fatal("expired JWT reported as live credential")
	}
	// The dead token is dropped, not just hidden.
	if s.token != "" {
		t.Fatal("expired JWT still persisted")
	}
}

func TestMemStoreLiveJWTReadsAsPresent(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	live := signedToken(t, time.Now().Add(time.Hour))
	s.SetToken(ctx, live)
	tok, ok := s.Token(ctx)
	if !ok || tok != live {
		t.Fatal("live JWT not returned")
	}
}

func TestMemStoreUserInfoRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	type profile struct {
		Username string `json:"username"`
	}

	var out profile
	if s.UserInfo(ctx, &out) {
		t.Fatal("empty store reported cached profile")
	}

	s.SetUserInfo(ctx, profile{Username: "alice"})
	if !s.UserInfo(ctx, &out) || out.Username != "alice" {
		t.Fatalf("expected cached alice, got %+v", out)
	}

	s.Clear(ctx)
	if s.UserInfo(ctx, &out) {
		t.Fatal("profile survived Clear")
	}
	if _, ok := s.Token(ctx); ok {
		t.Fatal("token survived Clear")
	}
}

func TestTokenExpiredEdgeCases(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"opaque", "some-random-session-id", false},
		{"malformed jwt", "aaa.bbb.ccc", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tokenExpired(tc.token); got != tc.want {
				t.Fatalf("tokenExpired(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).
		SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if tokenExpired(noExp) {
		t.Fatal("JWT without exp treated as expired")
	}
}
