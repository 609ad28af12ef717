// Package sessionkit is the client-side session and authorization core of an
// admin dashboard: one durable session record (token bundle + user profile),
// read-only accessors derived from it, a role-gated route guard, and an
// in-process notification channel that reports auth outcomes to the UI layer.
//
// The package is built for a single-threaded, event-driven UI scheduling
// model, but every component is safe for concurrent use so server-rendered
// hosts can share a Client across goroutines.
//
// # Architecture boundaries
//
// sessionkit is the public surface. It exposes [Client], [Builder], [Config],
// and value types (session records, guard decisions, notification events).
// Internal coordination — notification dispatch, login cooldown — lives under
// internal/ and is never exported directly.
//
// # What this package must NOT do
//
//   - Implement the authentication backend: network calls are delegated to a
//     caller-supplied [AuthAPI], and the session store is mutated only after
//     such a call resolves successfully, never speculatively.
//   - Refresh access tokens silently. Expiry is checked on demand; re-login
//     is the recovery path.
//   - Keep a session alive on ambiguous state: corrupt storage, missing
//     expiry, and unknown roles all degrade to "not authenticated".
package sessionkit
