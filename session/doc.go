// Package session owns the persisted authentication state: the pairing of a
// token bundle and a user profile that represents "who is logged in", the
// durable slot it is serialized into, and the read-only projections derived
// from it.
//
// # Architecture boundaries
//
// The [Store] is the sole writer of the durable slot. All other components
// (guards, middleware, UI callers) consume read-only snapshots and derived
// booleans; none of them may mutate session state directly.
//
// # What this package must NOT do
//
//   - Perform network authentication (login/logout flows live on the Client).
//   - Surface deserialization errors to callers: a slot that cannot be read
//     or decoded hydrates as "no session" and nothing else.
//   - Cache authentication decisions: [Store.Authenticated] is recomputed
//     against the wall clock on every call.
package session
