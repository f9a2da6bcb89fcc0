// Package session holds the client-side view of an authenticated console
// user: identity, role and permission sets, and the flattened list of routes
// the user may enter.
//
// A Session is populated by login or by rehydration from a persisted
// credential, and cleared by logout. It is constructed explicitly and
// injected wherever needed; there is no package-level instance.
//
// # Failure contract
//
// Network and backend failures never escape as errors. Every operation that
// talks to a collaborator absorbs the failure, logs a diagnostic, and
// returns false, so the hosting UI can show a generic failure state. A
// failed route load leaves the previous routes untouched; the next guarded
// navigation retries the load by recurrence, without explicit backoff.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/linminwei/notion-hub-go/api"
	"github.com/linminwei/notion-hub-go/credential"
	"github.com/linminwei/notion-hub-go/menu"
)

// AuthAPI is the authentication collaborator.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	GetCurrentUser(ctx context.Context) (*api.UserProfile, error)
}

// MenuAPI is the menu collaborator. The returned tree is scoped server-side
// to the caller; the session trusts it and performs no extra filtering.
type MenuAPI interface {
	GetUserMenuTree(ctx context.Context) ([]menu.Node, error)
}

// Options groups the dependencies of a [Session].
type Options struct {
	Auth        AuthAPI
	Menu        MenuAPI
	Credentials credential.Store
	Logger      *slog.Logger

	// AdminBypass makes HasPermission return true for any code when the
	// session holds an administrator alias role. The source system ships
	// with this behavior active; keep it off only when permission checks
	// must bind administrators too.
	AdminBypass bool

	// PublicPaths are reachable without authentication. Defaults to
	// /login and /register.
	PublicPaths []string
	// UniversalPaths are reachable by every authenticated user regardless
	// of menu grants. Defaults to /, /dashboard and /profile.
	UniversalPaths []string
}

var defaultPublicPaths = []string{"/login", "/register"}
var defaultUniversalPaths = []string{"/", "/dashboard", "/profile"}

// adminAliases are the role codes that trigger the permission bypass,
// compared case-insensitively.
var adminAliases = map[string]struct{}{
	"admin":       {},
	"super_admin": {},
}

// Session is the per-user authorization state. Safe for concurrent use.
type Session struct {
	auth  AuthAPI
	menus MenuAPI
	creds credential.Store
	log   *slog.Logger

	adminBypass bool
	public      map[string]struct{}
	universal   map[string]struct{}

	loadGroup singleflight.Group

	mu           sync.Mutex
	identity     *api.UserProfile
	roles        []string
	permissions  []string
	accessRoutes []string
	routesLoaded bool
}

// New validates the options and builds an empty [Session].
func New(opts Options) (*Session, error) {
	if opts.Auth == nil {
		return nil, errors.New("session: auth collaborator required")
	}
	if opts.Menu == nil {
		return nil, errors.New("session: menu collaborator required")
	}
	if opts.Credentials == nil {
		return nil, errors.New("session: credential store required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	public := opts.PublicPaths
	if public == nil {
		public = defaultPublicPaths
	}
	universal := opts.UniversalPaths
	if universal == nil {
		universal = defaultUniversalPaths
	}

	return &Session{
		auth:        opts.Auth,
		menus:       opts.Menu,
		creds:       opts.Credentials,
		log:         logger,
		adminBypass: opts.AdminBypass,
		public:      pathSet(public),
		universal:   pathSet(universal),
	}, nil
}

func pathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// Login authenticates against the backend. On success the token is
// persisted, roles and permissions are taken from the login response, and
// the route list and full profile are loaded before returning true. Their
// individual failures do not fail the login; they are retried by recurrence.
func (s *Session) Login(ctx context.Context, req api.LoginRequest) bool {
	res, err := s.auth.Login(ctx, req)
	if err != nil {
		s.log.Warn("login failed", "err", err)
		return false
	}
	if res == nil || res.Token == "" {
		s.log.Warn("login response carried no token")
		return false
	}

	s.creds.SetToken(ctx, res.Token)
	if res.UserInfo != nil {
		s.creds.SetUserInfo(ctx, res.UserInfo)
	}

	s.mu.Lock()
	s.identity = res.UserInfo
	s.roles = append([]string(nil), res.Roles...)
	s.permissions = append([]string(nil), res.Permissions...)
	s.mu.Unlock()

	s.LoadRoutes(ctx)
	s.RefreshUserInfo(ctx)
	return true
}

// LoadRoutes fetches the caller's menu tree and replaces the access-route
// list with its flattened paths. Concurrent callers share a single round
// trip. On failure the previous routes stay in place and false is returned.
func (s *Session) LoadRoutes(ctx context.Context) bool {
	v, err, _ := s.loadGroup.Do("routes", func() (any, error) {
		tree, err := s.menus.GetUserMenuTree(ctx)
		if err != nil {
			return nil, err
		}
		return menu.FlattenPaths(tree), nil
	})
	if err != nil {
		s.log.Warn("route load failed", "err", err)
		return false
	}

	paths, _ := v.([]string)
	s.mu.Lock()
	s.accessRoutes = paths
	s.routesLoaded = true
	s.mu.Unlock()
	return true
}

// RefreshUserInfo fetches the full profile and re-merges roles and
// permissions when the response carries them. The login response can be
// stale or partial; the profile endpoint is authoritative.
func (s *Session) RefreshUserInfo(ctx context.Context) bool {
	profile, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		s.log.Warn("user info refresh failed", "err", err)
		return false
	}
	if profile == nil {
		return false
	}

	s.mu.Lock()
	s.identity = profile
	if profile.Permissions != nil {
		s.permissions = append([]string(nil), profile.Permissions...)
	}
	if profile.Roles != nil {
		roles := make([]string, 0, len(profile.Roles))
		for _, r := range profile.Roles {
			roles = append(roles, r.RoleCode)
		}
		s.roles = roles
	}
	s.mu.Unlock()

	s.creds.SetUserInfo(ctx, profile)
	return true
}

// Rehydrate rebuilds the session from a persisted credential after a
// process restart. It reports false when no credential is present or the
// backend rejects it.
func (s *Session) Rehydrate(ctx context.Context) bool {
	if _, ok := s.creds.Token(ctx); !ok {
		return false
	}
	if !s.RefreshUserInfo(ctx) {
		return false
	}
	s.LoadRoutes(ctx)
	return true
}

// Logout clears every in-memory session field and the credential store.
// Idempotent.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.identity = nil
	s.roles = nil
	s.permissions = nil
	s.accessRoutes = nil
	s.routesLoaded = false
	s.mu.Unlock()

	s.creds.Clear(ctx)
}

// HasPermission reports whether the session holds the permission code.
// When the bypass is active, any administrator alias role grants every code.
func (s *Session) HasPermission(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adminBypass {
		for _, role := range s.roles {
			if _, ok := adminAliases[strings.ToLower(role)]; ok {
				return true
			}
		}
	}
	for _, p := range s.permissions {
		if p == code {
			return true
		}
	}
	return false
}

// HasRole reports whether the session holds the exact role code.
func (s *Session) HasRole(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r == code {
			return true
		}
	}
	return false
}

// CanAccessRoute reports whether the requested path may be entered.
// Public paths and the universal authenticated paths always pass; every
// other path passes iff it contains any granted access route as a
// substring. The substring semantic (rather than prefix or exact match) is
// inherited from the source system: a grant of /system/user also admits
// /system/user/edit — and /system/user-export. Tightening it is a product
// decision, not a bug fix.
func (s *Session) CanAccessRoute(path string) bool {
	if _, ok := s.public[path]; ok {
		return true
	}
	if _, ok := s.universal[path]; ok {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, route := range s.accessRoutes {
		if route != "" && strings.Contains(path, route) {
			return true
		}
	}
	return false
}

// RoutesLoaded reports whether a route load has succeeded this session.
func (s *Session) RoutesLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routesLoaded
}

// IsPublicPath reports whether the path is reachable without a credential.
func (s *Session) IsPublicPath(path string) bool {
	_, ok := s.public[path]
	return ok
}

// Identity returns the current profile, or nil before login.
func (s *Session) Identity() *api.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Roles returns a copy of the held role codes.
func (s *Session) Roles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.roles...)
}

// Permissions returns a copy of the held permission codes.
func (s *Session) Permissions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.permissions...)
}

// AccessRoutes returns a copy of the flattened access-route list.
func (s *Session) AccessRoutes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.accessRoutes...)
}
