package sessionkit

import (
	"context"
	"fmt"
)

// Logout destroys the session. Local state is cleared first and stays
// cleared no matter what the backend answers; the remote call is best
// effort. A failed remote logout is reported as [ErrRemoteLogout], but by
// then the local session is already gone, so callers may treat the error as
// advisory. Idempotent: logging out without a session succeeds.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil || c.api == nil {
		return ErrClientNotReady
	}

	hadSession := c.store.Snapshot() != nil

	if err := c.store.Clear(ctx); err != nil {
		c.emit(ctx, LevelError, "Sign-out could not be saved.", "logout")
		return err
	}

	if hadSession {
		c.metricInc(MetricSessionCleared)
	}

	if err := c.api.Logout(ctx); err != nil {
		c.metricInc(MetricRemoteLogoutFailure)
		c.emit(ctx, LevelWarning, "Signed out locally; the server could not be reached.", "logout")
		return fmt.Errorf("%w: %v", ErrRemoteLogout, err)
	}

	c.metricInc(MetricLogout)
	c.emit(ctx, LevelInfo, "Signed out.", "logout")
	return nil
}
