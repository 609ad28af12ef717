// Package middleware exposes an HTTP adapter over the route-guard decision
// machine for server-rendered or proxied frontends.
//
// # Guards
//
//   - [Guard] — evaluates one navigation attempt per request and translates
//     the decision into HTTP semantics.
//
// A Render decision passes the request through with the current user profile
// injected into the request context. Redirect decisions become 302 responses,
// with the originally requested path carried on login redirects so the login
// page can resume it. A Pending decision (store not hydrated yet) answers
// 503, signalling the caller to retry once startup hydration finishes.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Client.Authorize calls. It does
// NOT implement authorization logic itself — all decisions are delegated to
// the guard.
//
// # What this package must NOT do
//
//   - Inspect tokens or session records directly.
//   - Make authorization decisions beyond mapping the guard's outcome.
//   - Mutate session state.
package middleware
