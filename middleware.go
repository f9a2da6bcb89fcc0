package notionhub

import (
	"context"
	"net/http"
)

type decisionContextKey struct{}

// DecisionFromContext returns the guard decision attached by [Middleware],
// if any.
func DecisionFromContext(ctx context.Context) (Decision, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(Decision)
	return d, ok
}

// Middleware adapts the guard to net/http for server-rendered frontends.
// Redirect decisions become 302 responses; proceeding navigations reach the
// next handler with the decision attached to the request context.
func Middleware(guard *Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if guard == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			d := guard.Decide(r.Context(), r.URL.Path)
			switch d.Action {
			case ActionRedirectLogin, ActionRedirectHome:
				http.Redirect(w, r, d.RedirectTo, http.StatusFound)
			default:
				ctx := context.WithValue(r.Context(), decisionContextKey{}, d)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}
