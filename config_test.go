package sessionkit

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "missing login path",
			mutate: func(c *Config) {
				c.Guard.LoginPath = ""
			},
			wantValid: false,
		},
		{
			name: "missing admin home",
			mutate: func(c *Config) {
				c.Guard.AdminHome = ""
			},
			wantValid: false,
		},
		{
			name: "missing customer home",
			mutate: func(c *Config) {
				c.Guard.CustomerHome = ""
			},
			wantValid: false,
		},
		{
			name: "empty slot key",
			mutate: func(c *Config) {
				c.Session.SlotKey = ""
			},
			wantValid: false,
		},
		{
			name: "negative slot ttl",
			mutate: func(c *Config) {
				c.Session.SlotTTL = -time.Minute
			},
			wantValid: false,
		},
		{
			name: "positive slot ttl valid",
			mutate: func(c *Config) {
				c.Session.SlotTTL = time.Hour
			},
			wantValid: true,
		},
		{
			name: "negative max login failures",
			mutate: func(c *Config) {
				c.Auth.MaxLoginFailures = -1
			},
			wantValid: false,
		},
		{
			name: "cooldown disabled valid",
			mutate: func(c *Config) {
				c.Auth.MaxLoginFailures = 0
				c.Auth.FailureCooldown = 0
			},
			wantValid: true,
		},
		{
			name: "negative failure cooldown",
			mutate: func(c *Config) {
				c.Auth.FailureCooldown = -time.Second
			},
			wantValid: false,
		},
		{
			name: "negative notify buffer",
			mutate: func(c *Config) {
				c.Notify.BufferSize = -1
			},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.wantValid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDefaultConfigRouteTable(t *testing.T) {
	table := DefaultConfig().Guard.routeTable()

	if table.LoginPath != "/auth/login" {
		t.Fatalf("login path = %q", table.LoginPath)
	}
	if home, ok := table.Home(RoleAdmin); !ok || home != "/admin/default" {
		t.Fatalf("admin home = %q, ok = %v", home, ok)
	}
	if home, ok := table.Home(RoleCustomer); !ok || home != "/default" {
		t.Fatalf("customer home = %q, ok = %v", home, ok)
	}
	if table.Resume() != "next" {
		t.Fatalf("resume param = %q", table.Resume())
	}
}
