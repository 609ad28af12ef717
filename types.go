package sessionkit

import (
	"context"
	"io"

	internalnotify "github.com/apexboard/sessionkit/internal/notify"
	"github.com/apexboard/sessionkit/session"
)

// Role defines a public type used by the sessionkit APIs.
//
// Role instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Role = session.Role

const (
	// RoleAdmin is an exported constant or variable used by the session core.
	RoleAdmin = session.RoleAdmin
	// RoleCustomer is an exported constant or variable used by the session core.
	RoleCustomer = session.RoleCustomer
)

// UserProfile is the user identity attached to a session record.
type UserProfile = session.Profile

// TokenBundle carries the opaque bearer credentials of a session together
// with their absolute expiry instants.
type TokenBundle = session.TokenBundle

// SessionRecord is the persisted pairing of credentials and user profile
// representing "who is logged in".
type SessionRecord = session.Record

// Credentials is the input for [Client.Login].
type Credentials struct {
	Email    string
	Password string
}

// Registration is the input for [Client.Register].
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Grant is the result of a successful authentication exchange: the user the
// backend recognized plus, when the exchange establishes a session, its
// token bundle. A registration backend that requires a separate login
// returns a Grant with an empty bundle.
type Grant struct {
	Tokens TokenBundle
	User   UserProfile
}

// authenticated reports whether the grant carries a usable session.
func (g *Grant) authenticated() bool {
	return g != nil && g.Tokens.Access != "" && g.Tokens.Refresh != ""
}

// ResetChallenge is returned by [AuthAPI.ChangePassword]. Token identifies
// the pending reset exchange; it is empty when the backend delivers the
// challenge out of band (email link).
type ResetChallenge struct {
	Token string
}

// AuthAPI is the interface callers implement to connect sessionkit to their
// authentication backend. Every method is an opaque remote call returning
// success or failure; sessionkit owns only what happens to local session
// state after a call resolves.
//
//	Docs: docs/client.md
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*Grant, error)
	Register(ctx context.Context, reg Registration) (*Grant, error)
	ChangePassword(ctx context.Context, email string) (*ResetChallenge, error)
	VerifyCode(ctx context.Context, token, code string) error
	ResetPassword(ctx context.Context, token, code, newPassword string) error
	Logout(ctx context.Context) error
}

// NotificationLevel classifies a notification for the UI layer.
type NotificationLevel = internalnotify.Level

const (
	// LevelSuccess is an exported constant or variable used by the session core.
	LevelSuccess = internalnotify.LevelSuccess
	// LevelError is an exported constant or variable used by the session core.
	LevelError = internalnotify.LevelError
	// LevelInfo is an exported constant or variable used by the session core.
	LevelInfo = internalnotify.LevelInfo
	// LevelWarning is an exported constant or variable used by the session core.
	LevelWarning = internalnotify.LevelWarning
)

// NotificationEvent is a structured notification emitted by the session core.
//
//	Docs: docs/notify.md
type NotificationEvent = internalnotify.Event

// NotificationSink receives [NotificationEvent] values from the client's
// notification dispatcher.
type NotificationSink = internalnotify.Sink

// NoOpSink is a [NotificationSink] that silently discards all events.
type NoOpSink = internalnotify.NoOpSink

// ChannelSink is a buffered channel-based [NotificationSink].
type ChannelSink = internalnotify.ChannelSink

// JSONWriterSink is a [NotificationSink] that writes JSON-encoded events to
// an io.Writer, one object per line.
type JSONWriterSink = internalnotify.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return internalnotify.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] over w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalnotify.NewJSONWriterSink(w)
}
