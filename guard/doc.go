// Package guard implements the route-guard decision machine: given the
// current session state and a route's allowed-role set, it answers render,
// redirect-to-login, or redirect-to-role-default.
//
// # Decision machine
//
//   - Unresolved session (store not hydrated) — render a loading placeholder.
//   - Unauthenticated — redirect to the login entry point, preserving the
//     originally requested path so it can be resumed after login.
//   - Authenticated, wrong role — redirect to that role's default landing
//     route from the fixed role→route table. An unrecognized or missing role
//     is wrong for every role-restricted route (fail closed).
//   - Authenticated, role permitted — render.
//
// Terminal outcomes are render or redirect; there is no retry. A redirect is
// a new navigation that re-enters this same machine.
//
// # Architecture boundaries
//
// Decisions here are pure: no I/O, no clock, no session reads. Callers build
// a [State] from the session store and apply the [Decision] themselves (the
// middleware package translates decisions into HTTP responses).
//
// # What this package must NOT do
//
//   - Read or mutate session state.
//   - Issue redirects or touch HTTP types.
//   - Grant access by default when role information is ambiguous.
package guard
