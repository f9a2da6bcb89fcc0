// Package credential persists the console's opaque bearer token and the
// cached user profile across process restarts.
//
// Storage failures are never surfaced to callers: a store that cannot read
// reports the credential as absent, and a store that cannot write drops the
// value. The console stays usable; the worst case is an extra login.
package credential

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the durable key-value surface for the bearer credential and the
// cached profile. At most one credential is live per store.
type Store interface {
	// Token returns the persisted credential, or ("", false) when absent,
	// unreadable, or expired.
	Token(ctx context.Context) (string, bool)
	// SetToken persists the credential. Write failures are swallowed.
	SetToken(ctx context.Context, token string)
	// ClearToken removes the credential. Idempotent.
	ClearToken(ctx context.Context)

	// UserInfo decodes the cached profile into dst and reports whether a
	// cached profile was present and decodable.
	UserInfo(ctx context.Context, dst any) bool
	// SetUserInfo caches the profile as JSON. Write failures are swallowed.
	SetUserInfo(ctx context.Context, v any)

	// Clear removes both the credential and the cached profile.
	Clear(ctx context.Context)
}

// MemStore is an in-process Store. It is durable only for the lifetime of
// the process and exists for tests, examples, and embedded use.
type MemStore struct {
	mu       sync.Mutex
	token    string
	userInfo []byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token implements [Store].
func (m *MemStore) Token(_ context.Context) (string, bool) {
	m.mu.Lock()
	tok := m.token
	m.mu.Unlock()

	if tok == "" {
		return "", false
	}
	if tokenExpired(tok) {
		m.mu.Lock()
		if m.token == tok {
			m.token = ""
		}
		m.mu.Unlock()
		return "", false
	}
	return tok, true
}

// SetToken implements [Store].
func (m *MemStore) SetToken(_ context.Context, token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

// ClearToken implements [Store].
func (m *MemStore) ClearToken(_ context.Context) {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}

// UserInfo implements [Store].
func (m *MemStore) UserInfo(_ context.Context, dst any) bool {
	m.mu.Lock()
	data := m.userInfo
	m.mu.Unlock()

	if len(data) == 0 {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetUserInfo implements [Store].
func (m *MemStore) SetUserInfo(_ context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.userInfo = data
	m.mu.Unlock()
}

// Clear implements [Store].
func (m *MemStore) Clear(_ context.Context) {
	m.mu.Lock()
	m.token = ""
	m.userInfo = nil
	m.mu.Unlock()
}
