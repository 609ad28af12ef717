package sessionkit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/apexboard/sessionkit/guard"
	"github.com/apexboard/sessionkit/internal/limiters"
	"github.com/apexboard/sessionkit/session"
)

// Client defines a public type used by the sessionkit APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// The Client is the single writer of session state; everything it exposes to
// readers is a derived, read-only view.
type Client struct {
	config     Config
	store      *session.Store
	api        AuthAPI
	routes     guard.RouteTable
	notify     *notifyDispatcher
	metrics    *Metrics
	cooldown   *limiters.LoginCooldown
	authActive atomic.Bool
}

// Close describes the close operation and its observable behavior.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.notify != nil {
		c.notify.Close()
	}
}

// NotifyDropped reports how many notifications the dispatcher dropped due to
// backpressure.
func (c *Client) NotifyDropped() uint64 {
	if c == nil || c.notify == nil {
		return 0
	}
	return c.notify.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

func (c *Client) emit(ctx context.Context, level NotificationLevel, message, origin string) {
	if c == nil || c.notify == nil {
		return
	}

	event := newNotification(level, message, origin)
	if path := navigationPathFromContext(ctx); path != "" {
		event.Metadata = map[string]string{"path": path}
	}
	c.notify.Emit(ctx, event)
}

/*
====================================
SESSION ACCESSOR
====================================
*/

// CurrentUser returns a copy of the logged-in user's profile, or nil when no
// session exists.
func (c *Client) CurrentUser() *UserProfile {
	if c == nil {
		return nil
	}
	return c.store.CurrentUser()
}

// IsAuthenticated reports whether an access token exists and its expiry is
// strictly in the future. Recomputed against the wall clock on every call;
// never cached, no expiry timer.
func (c *Client) IsAuthenticated() bool {
	if c == nil {
		return false
	}
	return c.store.Authenticated()
}

// IsExpired reports whether the given expiry instant has passed. A zero
// instant counts as already expired.
func (c *Client) IsExpired(expiresAt time.Time) bool {
	if c == nil {
		return true
	}
	return c.store.Expired(expiresAt)
}

// AccessToken returns the raw access credential, or "" when absent.
func (c *Client) AccessToken() string {
	if c == nil {
		return ""
	}
	return c.store.AccessToken()
}

// RefreshToken returns the raw refresh credential, or "" when absent.
func (c *Client) RefreshToken() string {
	if c == nil {
		return ""
	}
	return c.store.RefreshToken()
}

// SessionSnapshot returns a copy of the full session record, or nil.
func (c *Client) SessionSnapshot() *SessionRecord {
	if c == nil {
		return nil
	}
	return c.store.Snapshot()
}

// Hydrated reports whether the store has produced a defined answer yet.
func (c *Client) Hydrated() bool {
	if c == nil {
		return false
	}
	return c.store.Hydrated()
}

/*
====================================
ROUTE GUARD
====================================
*/

// Authorize runs the route-guard decision machine for one navigation
// attempt. requested is the path being navigated to; allowed is the route's
// role set, where an empty set means the route only requires authentication.
func (c *Client) Authorize(requested string, allowed ...Role) guard.Decision {
	if c == nil {
		return guard.Decision{Outcome: guard.OutcomePending}
	}

	start := time.Now()

	state := guard.State{
		Hydrated:      c.store.Hydrated(),
		Authenticated: c.store.Authenticated(),
	}
	if user := c.store.CurrentUser(); user != nil {
		state.Role = user.Role
		if state.Hydrated && !state.Authenticated {
			// A record exists but its access window has passed.
			c.metricInc(MetricSessionExpiredObserved)
		}
	}

	decision := guard.Evaluate(c.routes, state, requested, allowed...)

	switch decision.Outcome {
	case guard.OutcomeRender:
		c.metricInc(MetricGuardRender)
	case guard.OutcomeLoginRedirect:
		c.metricInc(MetricGuardLoginRedirect)
	case guard.OutcomeRoleRedirect:
		c.metricInc(MetricGuardRoleRedirect)
		c.emit(WithNavigationPath(context.Background(), requested),
			LevelWarning, "You do not have permission to view this page.", "guard")
	case guard.OutcomePending:
		c.metricInc(MetricGuardPending)
	}

	if c.metrics.LatencyEnabled() {
		c.metrics.Observe(MetricGuardLatency, time.Since(start))
	}

	return decision
}

// RouteTable returns the fixed role→route table the guard redirects with.
func (c *Client) RouteTable() guard.RouteTable {
	if c == nil {
		return guard.RouteTable{}
	}
	return c.routes
}
