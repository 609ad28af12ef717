package sessionkit

import (
	"context"
	"fmt"
)

// RequestPasswordReset asks the backend to start a reset exchange for the
// given email. The returned challenge token is empty when the backend
// delivers it out of band. No session state is touched by the reset chain.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*ResetChallenge, error) {
	if c == nil || c.api == nil {
		return nil, ErrClientNotReady
	}

	challenge, err := c.api.ChangePassword(ctx, email)
	if err != nil {
		c.emit(ctx, LevelError, "Password reset could not be requested.", "reset")
		return nil, fmt.Errorf("%w: %v", ErrResetRejected, err)
	}

	c.metricInc(MetricResetRequest)
	c.emit(ctx, LevelInfo, "Check your email for a reset code.", "reset")

	if challenge == nil {
		challenge = &ResetChallenge{}
	}
	return challenge, nil
}

// VerifyResetCode checks the emailed code against a pending reset exchange.
func (c *Client) VerifyResetCode(ctx context.Context, challengeToken, code string) error {
	if c == nil || c.api == nil {
		return ErrClientNotReady
	}

	if err := c.api.VerifyCode(ctx, challengeToken, code); err != nil {
		c.metricInc(MetricResetVerifyFailure)
		c.emit(ctx, LevelError, "That code is not valid.", "reset")
		return fmt.Errorf("%w: %v", ErrResetRejected, err)
	}
	return nil
}

// ConfirmPasswordReset completes a reset exchange with the new password.
// The user still signs in afterwards; confirming a reset never creates a
// session.
func (c *Client) ConfirmPasswordReset(ctx context.Context, challengeToken, code, newPassword string) error {
	if c == nil || c.api == nil {
		return ErrClientNotReady
	}

	if err := c.api.ResetPassword(ctx, challengeToken, code, newPassword); err != nil {
		c.metricInc(MetricResetConfirmFailure)
		c.emit(ctx, LevelError, "Password could not be changed.", "reset")
		return fmt.Errorf("%w: %v", ErrResetRejected, err)
	}

	c.metricInc(MetricResetConfirmSuccess)
	c.emit(ctx, LevelSuccess, "Password changed. Please sign in.", "reset")
	return nil
}
