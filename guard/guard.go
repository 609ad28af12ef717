package guard

import (
	"errors"

	"github.com/apexboard/sessionkit/session"
)

// Outcome defines a public type used by the sessionkit APIs.
//
// Outcome instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Outcome uint8

const (
	// OutcomePending is an exported constant or variable used by the session core.
	OutcomePending Outcome = iota
	// OutcomeRender is an exported constant or variable used by the session core.
	OutcomeRender
	// OutcomeLoginRedirect is an exported constant or variable used by the session core.
	OutcomeLoginRedirect
	// OutcomeRoleRedirect is an exported constant or variable used by the session core.
	OutcomeRoleRedirect
)

// String describes the string operation and its observable behavior.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeRender:
		return "render"
	case OutcomeLoginRedirect:
		return "login-redirect"
	case OutcomeRoleRedirect:
		return "role-redirect"
	default:
		return "unknown"
	}
}

// RouteTable is the fixed, compiled-in mapping the guard redirects with:
// the login entry point plus each role's default landing route.
type RouteTable struct {
	LoginPath string
	RoleHomes map[session.Role]string
	// ResumeParam is the query parameter carrying the originally requested
	// path on a login redirect. Defaults to "next" when empty.
	ResumeParam string
}

// DefaultResumeParam is an exported constant or variable used by the session core.
const DefaultResumeParam = "next"

// Validate describes the validate operation and its observable behavior.
func (t RouteTable) Validate() error {
	if t.LoginPath == "" {
		return errors.New("guard route table requires a login path")
	}
	if t.RoleHomes[session.RoleAdmin] == "" {
		return errors.New("guard route table requires an admin home route")
	}
	if t.RoleHomes[session.RoleCustomer] == "" {
		return errors.New("guard route table requires a customer home route")
	}
	return nil
}

// Home returns the default landing route for a role.
func (t RouteTable) Home(role session.Role) (string, bool) {
	path, ok := t.RoleHomes[role]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Resume returns the configured resume query parameter name.
func (t RouteTable) Resume() string {
	if t.ResumeParam == "" {
		return DefaultResumeParam
	}
	return t.ResumeParam
}

// State is the session snapshot a decision is evaluated against. Callers
// derive it from the session store at the moment of navigation.
type State struct {
	Hydrated      bool
	Authenticated bool
	Role          session.Role
}

// Decision is the terminal answer for one navigation attempt.
type Decision struct {
	Outcome Outcome
	// Target is the redirect destination for the two redirect outcomes.
	Target string
	// Resume is the originally requested path, carried on login redirects so
	// navigation can continue after a successful login.
	Resume string
}

// Evaluate runs the decision machine for one navigation attempt. requested
// is the path being navigated to; allowed is the route's role set, where an
// empty set means the route only requires authentication.
func Evaluate(table RouteTable, state State, requested string, allowed ...session.Role) Decision {
	if !state.Hydrated {
		return Decision{Outcome: OutcomePending}
	}

	if !state.Authenticated {
		return Decision{
			Outcome: OutcomeLoginRedirect,
			Target:  table.LoginPath,
			Resume:  requested,
		}
	}

	if len(allowed) == 0 {
		return Decision{Outcome: OutcomeRender}
	}

	for _, role := range allowed {
		if state.Role.Known() && state.Role == role {
			return Decision{Outcome: OutcomeRender}
		}
	}

	// Wrong role. Send the user to their own landing route; a role without
	// a home (unknown or missing) falls back to the login path.
	if home, ok := table.Home(state.Role); ok {
		return Decision{Outcome: OutcomeRoleRedirect, Target: home}
	}
	return Decision{Outcome: OutcomeRoleRedirect, Target: table.LoginPath}
}
