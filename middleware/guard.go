package middleware

import (
	"context"
	"net/http"
	"net/url"

	sessionkit "github.com/apexboard/sessionkit"
	"github.com/apexboard/sessionkit/guard"
)

type profileContextKey struct{}

// ProfileFromContext returns the user profile injected by [Guard] for a
// request that was allowed to render.
func ProfileFromContext(ctx context.Context) (*sessionkit.UserProfile, bool) {
	user, ok := ctx.Value(profileContextKey{}).(*sessionkit.UserProfile)
	return user, ok
}

// Guard wraps a handler with the route-guard decision machine. allowed is the
// route's role set; an empty set means the route only requires a live
// session.
func Guard(client *sessionkit.Client, allowed ...sessionkit.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				http.Error(w, "session initializing", http.StatusServiceUnavailable)
				return
			}

			decision := client.Authorize(r.URL.RequestURI(), allowed...)

			switch decision.Outcome {
			case guard.OutcomeRender:
				ctx := sessionkit.WithNavigationPath(r.Context(), r.URL.RequestURI())
				if user := client.CurrentUser(); user != nil {
					ctx = context.WithValue(ctx, profileContextKey{}, user)
				}
				next.ServeHTTP(w, r.WithContext(ctx))

			case guard.OutcomeLoginRedirect:
				http.Redirect(w, r, loginURL(client.RouteTable(), decision), http.StatusFound)

			case guard.OutcomeRoleRedirect:
				http.Redirect(w, r, decision.Target, http.StatusFound)

			default:
				// Pending: hydration has not resolved yet.
				http.Error(w, "session initializing", http.StatusServiceUnavailable)
			}
		})
	}
}

func loginURL(table guard.RouteTable, decision guard.Decision) string {
	if decision.Resume == "" {
		return decision.Target
	}
	return decision.Target + "?" + table.Resume() + "=" + url.QueryEscape(decision.Resume)
}
