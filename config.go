package sessionkit

import (
	"errors"
	"time"

	"github.com/apexboard/sessionkit/guard"
	"github.com/apexboard/sessionkit/session"
)

// Config defines a public type used by the sessionkit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Session SessionConfig
	Guard   GuardConfig
	Auth    AuthConfig
	Notify  NotifyConfig
	Metrics MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by the sessionkit APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// SlotKey is the fixed key a Redis-backed slot stores the record under.
	SlotKey string
	// SlotTTL bounds how long a Redis-backed record may outlive its refresh
	// window. Zero means no expiry.
	SlotTTL time.Duration
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig fixes the compiled-in route table the guard redirects with.
type GuardConfig struct {
	LoginPath    string
	AdminHome    string
	CustomerHome string
	// ResumeParam is the query parameter carrying the originally requested
	// path on a login redirect. Defaults to "next" when empty.
	ResumeParam string
}

func (c GuardConfig) routeTable() guard.RouteTable {
	return guard.RouteTable{
		LoginPath: c.LoginPath,
		RoleHomes: map[session.Role]string{
			session.RoleAdmin:    c.AdminHome,
			session.RoleCustomer: c.CustomerHome,
		},
		ResumeParam: c.ResumeParam,
	}
}

/*
====================================
AUTH CONFIG
====================================
*/

// AuthConfig defines a public type used by the sessionkit APIs.
//
// AuthConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuthConfig struct {
	// SingleFlight enforces at most one pending authentication exchange.
	// A second Login/Register while one is pending fails with
	// [ErrAuthInFlight] instead of racing the first.
	SingleFlight bool
	// AutoLoginOnRegister saves the session when a registration grant
	// carries tokens.
	AutoLoginOnRegister bool
	// MaxLoginFailures and FailureCooldown configure the local login
	// cooldown. Zero in either disables it.
	MaxLoginFailures int
	FailureCooldown  time.Duration
}

/*
====================================
NOTIFY CONFIG
====================================
*/

// NotifyConfig defines a public type used by the sessionkit APIs.
//
// NotifyConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NotifyConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by the sessionkit APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration the Builder starts from: guard
// routes for a stock admin dashboard, notifications on, metrics on, single
// in-flight auth exchange enforced.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			SlotKey: session.DefaultSlotKey,
		},
		Guard: GuardConfig{
			LoginPath:    "/auth/login",
			AdminHome:    "/admin/default",
			CustomerHome: "/default",
		},
		Auth: AuthConfig{
			SingleFlight:        true,
			AutoLoginOnRegister: true,
			MaxLoginFailures:    5,
			FailureCooldown:     30 * time.Second,
		},
		Notify: NotifyConfig{
			Enabled:    true,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
func (c *Config) Validate() error {
	if err := c.Guard.routeTable().Validate(); err != nil {
		return err
	}
	if c.Session.SlotKey == "" {
		return errors.New("session slot key must not be empty")
	}
	if c.Session.SlotTTL < 0 {
		return errors.New("session slot ttl must not be negative")
	}
	if c.Auth.MaxLoginFailures < 0 {
		return errors.New("auth max login failures must not be negative")
	}
	if c.Auth.FailureCooldown < 0 {
		return errors.New("auth failure cooldown must not be negative")
	}
	if c.Notify.BufferSize < 0 {
		return errors.New("notify buffer size must not be negative")
	}
	return nil
}
