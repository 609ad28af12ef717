package limiters

import (
	"testing"
	"time"
)

func TestLoginCooldownBlocksAfterThreshold(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	l := NewLoginCooldown(3, time.Minute, clock)

	for i := 0; i < 2; i++ {
		if !l.Allow() {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		l.Failure()
	}
	if !l.Allow() {
		t.Fatal("third attempt should still be allowed")
	}
	l.Failure()

	if l.Allow() {
		t.Fatal("expected cooldown after third failure")
	}

	now = now.Add(2 * time.Minute)
	if !l.Allow() {
		t.Fatal("expected cooldown lifted after window")
	}
}

func TestLoginCooldownSuccessResets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	l := NewLoginCooldown(2, time.Minute, clock)
	l.Failure()
	l.Success()
	l.Failure()

	if !l.Allow() {
		t.Fatal("success must reset the failure counter")
	}
}

func TestLoginCooldownNilSafe(t *testing.T) {
	var l *LoginCooldown
	if !l.Allow() {
		t.Fatal("nil limiter must allow")
	}
	l.Failure()
	l.Success()
}

func TestLoginCooldownDisabled(t *testing.T) {
	if NewLoginCooldown(0, time.Minute, nil) != nil {
		t.Fatal("zero threshold must disable the limiter")
	}
	if NewLoginCooldown(3, 0, nil) != nil {
		t.Fatal("zero cooldown must disable the limiter")
	}
}
