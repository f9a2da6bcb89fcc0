package notionhub

import (
	"context"
	"log/slog"

	"github.com/linminwei/notion-hub-go/credential"
	"github.com/linminwei/notion-hub-go/session"
)

const (
	accessDeniedNotice   = "you do not have permission to access this page"
	sessionExpiredNotice = "your session has expired, please log in again"
)

// Guard resolves every navigation attempt to exactly one decision:
// proceed, redirect to login, or redirect to the authenticated home.
//
// The guard is memoryless across navigations except for the session's
// cached access routes. The only suspension point is the route load issued
// when a credentialed navigation arrives before routes are cached; the
// session deduplicates concurrent loads, so parallel navigations cost one
// round trip.
type Guard struct {
	session  *session.Session
	creds    credential.Store
	notifier Notifier
	log      *slog.Logger

	homePath  string
	loginPath string
}

// Decide evaluates a navigation to target and returns the guard's decision.
func (g *Guard) Decide(ctx context.Context, target string) Decision {
	if g.session.IsPublicPath(target) {
		// An authenticated user has no business on the login or register
		// page; send them home instead.
		if _, ok := g.creds.Token(ctx); ok {
			return Decision{Action: ActionRedirectHome, RedirectTo: g.homePath}
		}
		return Decision{Action: ActionProceed}
	}

	if _, ok := g.creds.Token(ctx); !ok {
		return Decision{Action: ActionRedirectLogin, RedirectTo: g.loginPath}
	}

	if !g.session.RoutesLoaded() {
		g.session.LoadRoutes(ctx)
	}

	// A logout may have raced the route load; trust the credential as it
	// stands now, not as it stood before the call.
	if _, ok := g.creds.Token(ctx); !ok {
		return Decision{Action: ActionRedirectLogin, RedirectTo: g.loginPath}
	}

	if g.session.CanAccessRoute(target) {
		return Decision{Action: ActionProceed}
	}

	g.log.Info("navigation denied", "target", target)
	g.notifier.Notify(LevelError, accessDeniedNotice)
	return Decision{Action: ActionRedirectHome, RedirectTo: g.homePath, Notice: accessDeniedNotice}
}
