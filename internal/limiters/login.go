package limiters

import (
	"sync"
	"time"
)

// LoginCooldown is a local failure throttle for authentication exchanges:
// after maxFailures consecutive local failures, further attempts are blocked
// until the cooldown window ends. A success resets the counter. State lives
// in process memory only — the backend keeps its own server-side limits.
//
// Nil-safe: all methods on a nil receiver behave as "no limit".
type LoginCooldown struct {
	mu           sync.Mutex
	maxFailures  int
	cooldown     time.Duration
	clock        func() time.Time
	failures     int
	blockedUntil time.Time
}

// NewLoginCooldown returns a cooldown limiter, or nil when maxFailures or
// cooldown disables it.
func NewLoginCooldown(maxFailures int, cooldown time.Duration, clock func() time.Time) *LoginCooldown {
	if maxFailures <= 0 || cooldown <= 0 {
		return nil
	}
	if clock == nil {
		clock = time.Now
	}
	return &LoginCooldown{
		maxFailures: maxFailures,
		cooldown:    cooldown,
		clock:       clock,
	}
}

// Allow reports whether a new attempt may start.
func (l *LoginCooldown) Allow() bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.blockedUntil.IsZero() {
		return true
	}
	if l.clock().Before(l.blockedUntil) {
		return false
	}

	// Window over; one fresh burst of attempts.
	l.blockedUntil = time.Time{}
	l.failures = 0
	return true
}

// Failure records a failed attempt and starts the cooldown window once the
// threshold is reached.
func (l *LoginCooldown) Failure() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures++
	if l.failures >= l.maxFailures {
		l.blockedUntil = l.clock().Add(l.cooldown)
	}
}

// Success resets the failure counter and lifts any active cooldown.
func (l *LoginCooldown) Success() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures = 0
	l.blockedUntil = time.Time{}
}
