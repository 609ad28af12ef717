package sessionkit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLoginSuccessStoresSession(t *testing.T) {
	api := &scriptedAPI{grant: testGrant(time.Hour)}
	client := newTestClient(t, withAPI(api))

	user, err := client.Login(context.Background(), Credentials{Email: "alice@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user == nil || user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if !client.IsAuthenticated() {
		t.Fatal("expected authenticated session after login")
	}
	if got := client.AccessToken(); got != "access-token" {
		t.Fatalf("AccessToken = %q", got)
	}
	if current := client.CurrentUser(); current == nil || current.Email != "alice@example.com" {
		t.Fatalf("CurrentUser = %+v", current)
	}

	snap := client.MetricsSnapshot()
	if snap.Counters[MetricLoginSuccess] != 1 {
		t.Fatalf("login success counter = %d, want 1", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricSessionSaved] != 1 {
		t.Fatalf("session saved counter = %d, want 1", snap.Counters[MetricSessionSaved])
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	api := &scriptedAPI{grant: testGrant(time.Hour)}
	client := newTestClient(t, withAPI(api))

	if _, err := client.Login(context.Background(), Credentials{}); err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	api.loginErr = errors.New("invalid credentials")
	_, err := client.Login(context.Background(), Credentials{})
	if !errors.Is(err, ErrAuthRejected) {
		t.Fatalf("expected ErrAuthRejected, got %v", err)
	}

	if !client.IsAuthenticated() {
		t.Fatal("failed login must not clear the existing session")
	}
	if current := client.CurrentUser(); current == nil || current.ID != "u-1" {
		t.Fatalf("CurrentUser = %+v", current)
	}
}

func TestLoginGrantWithoutTokensRejected(t *testing.T) {
	grant := testGrant(time.Hour)
	grant.Tokens.Access = ""
	api := &scriptedAPI{grant: grant}
	client := newTestClient(t, withAPI(api))

	_, err := client.Login(context.Background(), Credentials{})
	if !errors.Is(err, ErrAuthRejected) {
		t.Fatalf("expected ErrAuthRejected, got %v", err)
	}
	if client.IsAuthenticated() {
		t.Fatal("tokenless grant must not create a session")
	}
}

func TestLoginRejectedWhileAnotherIsInFlight(t *testing.T) {
	api := &scriptedAPI{
		grant: testGrant(time.Hour),
		gate:  make(chan struct{}),
	}
	client := newTestClient(t, withAPI(api))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := client.Login(context.Background(), Credentials{}); err != nil {
			t.Errorf("gated login failed: %v", err)
		}
	}()

	// Wait until the first exchange is inside the API call.
	deadline := time.Now().Add(time.Second)
	for api.loginCalls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first login never reached the API")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := client.Login(context.Background(), Credentials{}); !errors.Is(err, ErrAuthInFlight) {
		t.Fatalf("expected ErrAuthInFlight, got %v", err)
	}

	close(api.gate)
	wg.Wait()

	if got := client.MetricsSnapshot().Counters[MetricLoginInFlightRejected]; got != 1 {
		t.Fatalf("in-flight rejected counter = %d, want 1", got)
	}

	// The slot is free again after the first exchange resolves.
	if _, err := client.Login(context.Background(), Credentials{}); err != nil {
		t.Fatalf("login after release failed: %v", err)
	}
}

func TestLoginCooldownBlocksAfterRepeatedFailures(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cfg := DefaultConfig()
	cfg.Auth.MaxLoginFailures = 2
	cfg.Auth.FailureCooldown = 30 * time.Second

	api := &scriptedAPI{loginErr: errors.New("invalid credentials")}
	client := newTestClient(t, withAPI(api), withConfig(cfg), withClock(clock))

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.Login(ctx, Credentials{}); !errors.Is(err, ErrAuthRejected) {
			t.Fatalf("attempt %d: expected ErrAuthRejected, got %v", i, err)
		}
	}

	if _, err := client.Login(ctx, Credentials{}); !errors.Is(err, ErrLoginCooldown) {
		t.Fatalf("expected ErrLoginCooldown, got %v", err)
	}
	if got := api.loginCalls.Load(); got != 2 {
		t.Fatalf("cooldown-rejected attempt must not reach the API, calls = %d", got)
	}

	// Window over: attempts flow again and a success resets the counter.
	now = now.Add(31 * time.Second)
	api.loginErr = nil
	api.grant = testGrant(time.Hour)
	if _, err := client.Login(ctx, Credentials{}); err != nil {
		t.Fatalf("login after cooldown failed: %v", err)
	}

	snap := client.MetricsSnapshot()
	if snap.Counters[MetricLoginCooldownRejected] != 1 {
		t.Fatalf("cooldown rejected counter = %d, want 1", snap.Counters[MetricLoginCooldownRejected])
	}
}

func TestRegisterAutoLoginSavesSession(t *testing.T) {
	api := &scriptedAPI{registerGrant: testGrant(time.Hour)}
	client := newTestClient(t, withAPI(api))

	user, err := client.Register(context.Background(), Registration{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user == nil || user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !client.IsAuthenticated() {
		t.Fatal("expected auto-login after registration")
	}
}

func TestRegisterWithoutAutoLoginLeavesSessionAbsent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Auth.AutoLoginOnRegister = false

	api := &scriptedAPI{registerGrant: testGrant(time.Hour)}
	client := newTestClient(t, withAPI(api), withConfig(cfg))

	if _, err := client.Register(context.Background(), Registration{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if client.IsAuthenticated() {
		t.Fatal("registration must not create a session when auto-login is off")
	}
}

func TestRegisterFailure(t *testing.T) {
	api := &scriptedAPI{registerErr: errors.New("duplicate email")}
	client := newTestClient(t, withAPI(api))

	_, err := client.Register(context.Background(), Registration{})
	if !errors.Is(err, ErrAuthRejected) {
		t.Fatalf("expected ErrAuthRejected, got %v", err)
	}
	if got := client.MetricsSnapshot().Counters[MetricRegisterFailure]; got != 1 {
		t.Fatalf("register failure counter = %d, want 1", got)
	}
}
