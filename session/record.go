package session

import "time"

// Role defines a public type used by the sessionkit APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the session core.
	RoleAdmin Role = "admin"
	// RoleCustomer is an exported constant or variable used by the session core.
	RoleCustomer Role = "customer"
)

// Known reports whether the role is one of the enumerated values. An empty
// or unrecognized role is treated as "not fully authenticated" by guards.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// Profile is the user identity attached to a session record.
//
//	Docs: docs/session.md
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// TokenBundle carries the opaque bearer credentials of a session together
// with their absolute expiry instants. AccessExpiresAt <= RefreshExpiresAt
// is assumed, not enforced.
type TokenBundle struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

// Record is the persisted session: exactly one token bundle and one user
// profile. Absence of a record (nil) means "not logged in"; there is no
// partially-populated state.
type Record struct {
	Tokens TokenBundle `json:"tokens"`
	User   Profile     `json:"user"`
}

// Clone returns a deep copy safe to hand to readers.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}
