package sessionkit

import (
	"context"
	"fmt"

	"github.com/apexboard/sessionkit/token"
)

// beginAuthExchange reserves the single in-flight authentication slot.
// The returned release func must be called when the exchange resolves.
func (c *Client) beginAuthExchange() (func(), error) {
	if !c.config.Auth.SingleFlight {
		return func() {}, nil
	}
	if !c.authActive.CompareAndSwap(false, true) {
		return nil, ErrAuthInFlight
	}
	return func() { c.authActive.Store(false) }, nil
}

// Login exchanges credentials with the authentication backend and, on
// success, replaces the session record wholesale. The store is mutated only
// after the exchange resolves successfully — a rejected login leaves any
// existing session untouched.
//
// At most one authentication exchange runs at a time: a Login or Register
// issued while another is pending fails with [ErrAuthInFlight] instead of
// racing it. Navigating away does not cancel an exchange; cancel ctx for
// that, and a canceled exchange never reaches the store.
func (c *Client) Login(ctx context.Context, creds Credentials) (*UserProfile, error) {
	if c == nil || c.api == nil {
		return nil, ErrClientNotReady
	}

	release, err := c.beginAuthExchange()
	if err != nil {
		c.metricInc(MetricLoginInFlightRejected)
		return nil, err
	}
	defer release()

	if !c.cooldown.Allow() {
		c.metricInc(MetricLoginCooldownRejected)
		c.emit(ctx, LevelWarning, "Too many failed attempts. Please wait before trying again.", "login")
		return nil, ErrLoginCooldown
	}

	grant, err := c.api.Login(ctx, creds)
	if err != nil {
		c.cooldown.Failure()
		c.metricInc(MetricLoginFailure)
		c.emit(ctx, LevelError, "Login failed. Please check your credentials.", "login")
		return nil, fmt.Errorf("%w: %v", ErrAuthRejected, err)
	}
	if !grant.authenticated() {
		c.cooldown.Failure()
		c.metricInc(MetricLoginFailure)
		c.emit(ctx, LevelError, "Login failed. Please check your credentials.", "login")
		return nil, fmt.Errorf("%w: backend returned no session tokens", ErrAuthRejected)
	}

	bundle := token.Normalize(grant.Tokens)
	if err := c.store.Save(ctx, bundle, grant.User); err != nil {
		c.metricInc(MetricLoginFailure)
		c.emit(ctx, LevelError, "Login could not be saved.", "login")
		return nil, err
	}

	c.cooldown.Success()
	c.metricInc(MetricLoginSuccess)
	c.metricInc(MetricSessionSaved)
	c.emit(ctx, LevelSuccess, "Signed in.", "login")

	user := grant.User
	return &user, nil
}

// Register creates an account through the backend. When the grant carries
// tokens and AutoLoginOnRegister is set, the new session is saved exactly as
// a login would; otherwise the caller is expected to direct the user to the
// login page.
func (c *Client) Register(ctx context.Context, reg Registration) (*UserProfile, error) {
	if c == nil || c.api == nil {
		return nil, ErrClientNotReady
	}

	release, err := c.beginAuthExchange()
	if err != nil {
		c.metricInc(MetricLoginInFlightRejected)
		return nil, err
	}
	defer release()

	grant, err := c.api.Register(ctx, reg)
	if err != nil {
		c.metricInc(MetricRegisterFailure)
		c.emit(ctx, LevelError, "Registration failed.", "register")
		return nil, fmt.Errorf("%w: %v", ErrAuthRejected, err)
	}

	c.metricInc(MetricRegisterSuccess)

	if c.config.Auth.AutoLoginOnRegister && grant.authenticated() {
		bundle := token.Normalize(grant.Tokens)
		if err := c.store.Save(ctx, bundle, grant.User); err != nil {
			c.emit(ctx, LevelError, "Account created, but sign-in could not be saved.", "register")
			return nil, err
		}
		c.metricInc(MetricSessionSaved)
		c.emit(ctx, LevelSuccess, "Account created. You are signed in.", "register")
	} else {
		c.emit(ctx, LevelSuccess, "Account created. Please sign in.", "register")
	}

	user := grant.User
	return &user, nil
}
