package sessionkit

import "errors"

var (
	// ErrClientNotReady is an exported constant or variable used by the session core.
	ErrClientNotReady = errors.New("client not ready")
	// ErrAuthInFlight is returned when a login or registration exchange is
	// attempted while another one is still pending. At most one
	// authentication exchange runs at a time; the later attempt is rejected
	// rather than allowed to race the earlier one.
	ErrAuthInFlight = errors.New("authentication exchange already in flight")
	// ErrLoginCooldown is an exported constant or variable used by the session core.
	ErrLoginCooldown = errors.New("login attempts temporarily blocked")
	// ErrAuthRejected wraps an authentication backend failure. The session
	// store is left untouched when it is returned.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrResetRejected wraps a password-reset backend failure.
	ErrResetRejected = errors.New("password reset rejected")
	// ErrRemoteLogout is returned when the backend logout call fails after
	// the local session has already been cleared.
	ErrRemoteLogout = errors.New("remote logout failed")
)
