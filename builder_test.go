package notionhub

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/linminwei/notion-hub-go/credential"
)

func TestBuildRejectsInvalidConfig(t *testing.T) {
	_, err := New().WithCredentialStore(credential.NewMemStore()).Build()
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("empty base URL: err = %v", err)
	}
}

func TestBuildRequiresCredentialBackend(t *testing.T) {
	_, err := New().WithConfig(validConfig()).Build()
	if !errors.Is(err, ErrMissingCredentialStore) {
		t.Fatalf("no store and no redis: err = %v", err)
	}
}

func TestBuildWithExplicitStore(t *testing.T) {
	console, err := New().
		WithConfig(validConfig()).
		WithCredentialStore(credential.NewMemStore()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if console.API == nil || console.Session == nil || console.Guard == nil || console.Credentials == nil {
		t.Fatalf("console not fully wired: %+v", console)
	}
}

func TestBuildWithRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := validConfig()
	cfg.Redis.KeyPrefix = "buildtest"
	console, err := New().WithConfig(cfg).WithRedis(client).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx := context.Background()
	console.Credentials.SetToken(ctx, "tok")
	if !mr.Exists("buildtest:token") {
		t.Fatal("credential store not namespaced by the configured prefix")
	}
}

func TestBuildWithRedisAddr(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := validConfig()
	cfg.Redis.Addr = mr.Addr()
	console, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx := context.Background()
	console.Credentials.SetToken(ctx, "tok")
	if !mr.Exists("nh:token") {
		t.Fatal("configured redis address not used for the credential store")
	}
}

func TestBuildRejectsReuse(t *testing.T) {
	b := New().WithConfig(validConfig()).WithCredentialStore(credential.NewMemStore())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("second Build: err = %v, want ErrBuilderUsed", err)
	}
}

func TestBuildFailureLeavesBuilderReusable(t *testing.T) {
	b := New()
	if _, err := b.Build(); err == nil {
		t.Fatal("invalid build unexpectedly succeeded")
	}

	console, err := b.
		WithConfig(validConfig()).
		WithCredentialStore(credential.NewMemStore()).
		Build()
	if err != nil {
		t.Fatalf("Build after fixing the config failed: %v", err)
	}
	if console == nil {
		t.Fatal("nil console from successful Build")
	}
}
