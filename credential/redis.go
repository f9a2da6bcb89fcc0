package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps transport-level Redis failures in diagnostics.
// It never crosses the [Store] interface; it only shows up in logs.
var ErrRedisUnavailable = errors.New("redis unavailable")

const defaultPrefix = "nh"

// RedisStore is a Redis-backed [Store]. Values are written without TTL so
// the credential survives both client and Redis restarts (given persistence
// on the Redis side).
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates a [RedisStore] on the given client. prefix namespaces
// the keys; when empty a default is used.
func NewRedisStore(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{redis: client, prefix: prefix, logger: logger}
}

func (s *RedisStore) tokenKey() string    { return s.prefix + ":token" }
func (s *RedisStore) userInfoKey() string { return s.prefix + ":userinfo" }

// Token implements [Store]. Read failures are logged and reported as absent.
func (s *RedisStore) Token(ctx context.Context) (string, bool) {
	tok, err := s.redis.Get(ctx, s.tokenKey()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("credential read failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
		}
		return "", false
	}
	if tok == "" {
		return "", false
	}
	if tokenExpired(tok) {
		s.ClearToken(ctx)
		return "", false
	}
	return tok, true
}

// SetToken implements [Store].
func (s *RedisStore) SetToken(ctx context.Context, token string) {
	if err := s.redis.Set(ctx, s.tokenKey(), token, 0).Err(); err != nil {
		s.logger.Warn("credential write failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
	}
}

// ClearToken implements [Store].
func (s *RedisStore) ClearToken(ctx context.Context) {
	if err := s.redis.Del(ctx, s.tokenKey()).Err(); err != nil {
		s.logger.Warn("credential delete failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
	}
}

// UserInfo implements [Store].
func (s *RedisStore) UserInfo(ctx context.Context, dst any) bool {
	data, err := s.redis.Get(ctx, s.userInfoKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("profile cache read failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
		}
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetUserInfo implements [Store].
func (s *RedisStore) SetUserInfo(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("profile cache encode failed", "err", err)
		return
	}
	if err := s.redis.Set(ctx, s.userInfoKey(), data, 0).Err(); err != nil {
		s.logger.Warn("profile cache write failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
	}
}

// Clear implements [Store].
func (s *RedisStore) Clear(ctx context.Context) {
	if err := s.redis.Del(ctx, s.tokenKey(), s.userInfoKey()).Err(); err != nil {
		s.logger.Warn("credential clear failed", "err", fmt.Errorf("%w: %v", ErrRedisUnavailable, err))
	}
}
