// Package limiters provides the client-side throttles used by the session
// core.
//
// # Limiters
//
//   - [LoginCooldown] — consecutive-failure cooldown for authentication
//     exchanges, in process memory.
//
// All limiters are nil-safe: calling any method on a nil receiver behaves as
// "no limit".
//
// # What this package must NOT do
//
//   - Import sessionkit or any sibling internal package.
//   - Replace server-side rate limiting; these throttles only keep the local
//     UI from hammering a backend that is already rejecting it.
package limiters
