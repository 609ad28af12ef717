package sessionkit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/apexboard/sessionkit/session"
)

// scriptedAPI is a test double for AuthAPI. Each operation returns the
// scripted result; gate, when set, blocks Login until released so tests can
// hold an exchange in flight.
type scriptedAPI struct {
	grant    *Grant
	loginErr error

	registerGrant *Grant
	registerErr   error

	resetChallenge *ResetChallenge
	changeErr      error
	verifyErr      error
	resetErr       error

	logoutErr error

	gate chan struct{}

	loginCalls  atomic.Int64
	logoutCalls atomic.Int64
}

func (s *scriptedAPI) Login(ctx context.Context, creds Credentials) (*Grant, error) {
	s.loginCalls.Add(1)
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.grant, nil
}

func (s *scriptedAPI) Register(ctx context.Context, reg Registration) (*Grant, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerGrant, nil
}

func (s *scriptedAPI) ChangePassword(ctx context.Context, email string) (*ResetChallenge, error) {
	if s.changeErr != nil {
		return nil, s.changeErr
	}
	if s.resetChallenge != nil {
		return s.resetChallenge, nil
	}
	return &ResetChallenge{Token: "challenge-1"}, nil
}

func (s *scriptedAPI) VerifyCode(ctx context.Context, token, code string) error {
	return s.verifyErr
}

func (s *scriptedAPI) ResetPassword(ctx context.Context, token, code, newPassword string) error {
	return s.resetErr
}

func (s *scriptedAPI) Logout(ctx context.Context) error {
	s.logoutCalls.Add(1)
	return s.logoutErr
}

func testGrant(expiresIn time.Duration) *Grant {
	return &Grant{
		Tokens: TokenBundle{
			Access:           "access-token",
			Refresh:          "refresh-token",
			AccessExpiresAt:  time.Now().Add(expiresIn),
			RefreshExpiresAt: time.Now().Add(24 * time.Hour),
		},
		User: UserProfile{
			ID:    "u-1",
			Email: "alice@example.com",
			Role:  RoleAdmin,
		},
	}
}

type clientTestOption func(*Builder)

func withAPI(api AuthAPI) clientTestOption {
	return func(b *Builder) { b.WithAuthAPI(api) }
}

func withSlot(slot session.Slot) clientTestOption {
	return func(b *Builder) { b.WithSlot(slot) }
}

func withConfig(cfg Config) clientTestOption {
	return func(b *Builder) { b.WithConfig(cfg) }
}

func withSink(sink NotificationSink) clientTestOption {
	return func(b *Builder) { b.WithNotificationSink(sink) }
}

func withClock(clock func() time.Time) clientTestOption {
	return func(b *Builder) { b.WithClock(clock) }
}

func newTestClient(t testingT, opts ...clientTestOption) *Client {
	t.Helper()

	builder := New().WithSlot(session.NewMemorySlot())
	for _, opt := range opts {
		opt(builder)
	}
	if builder.api == nil {
		builder.WithAuthAPI(&scriptedAPI{grant: testGrant(time.Hour)})
	}

	client, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

// testingT is the subset of *testing.T the helpers need; *testing.B satisfies
// it too.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}
