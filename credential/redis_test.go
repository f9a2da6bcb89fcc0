package credential

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, "nhtest", nil), mr
}

func TestRedisStoreTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)

	if _, ok := s.Token(ctx); ok {
		t.Fatal("empty store reported a token")
	}

	s.SetToken(ctx, "bearer-abc123")
	tok, ok := s.Token(ctx)
	if !ok || tok != "bearer-abc123" {
		t.Fatalf("expected bearer-abc123, got %q (ok=%v)", tok, ok)
	}

	s.ClearToken(ctx)
	if _, ok := s.Token(ctx); ok {
		t.Fatal("token survived ClearToken")
	}
}

func TestRedisStoreKeyNamespace(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)

	s.SetToken(ctx, "tok")
	if !mr.Exists("nhtest:token") {
		t.Fatal("token not stored under prefixed key")
	}
}

func TestRedisStoreFailureReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)

	s.SetToken(ctx, "tok")
	mr.Close()

	// Backend gone: reads report absent, writes and deletes are swallowed.
	if _, ok := s.Token(ctx); ok {
		t.Fatal("unreachable backend reported a token")
	}
	s.SetToken(ctx, "other")
	s.ClearToken(ctx)
	s.Clear(ctx)

	var out map[string]any
	if s.UserInfo(ctx, &out) {
		t.Fatal("unreachable backend reported cached profile")
	}
}

func TestRedisStoreUserInfoRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisStore(t)

	type profile struct {
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}

	s.SetUserInfo(ctx, profile{Username: "alice", Roles: []string{"editor"}})

	var out profile
	if !s.UserInfo(ctx, &out) {
		t.Fatal("cached profile not found")
	}
	if out.Username != "alice" || len(out.Roles) != 1 || out.Roles[0] != "editor" {
		t.Fatalf("unexpected cached profile: %+v", out)
	}

	s.Clear(ctx)
	if s.UserInfo(ctx, &out) {
		t.Fatal("profile survived Clear")
	}
}

func TestRedisStoreDefaultPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStore(rdb, "", nil)
	s.SetToken(context.Background(), "tok")
	if !mr.Exists("nh:token") {
		t.Fatal("default prefix not applied")
	}
}
