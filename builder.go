package sessionkit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/apexboard/sessionkit/internal/limiters"
	"github.com/apexboard/sessionkit/session"
)

// Builder defines a public type used by the sessionkit APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	slot   session.Slot
	redis  redis.UniversalClient
	api    AuthAPI
	sink   NotificationSink
	clock  func() time.Time

	built bool
}

// New describes the new operation and its observable behavior.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithSlot supplies the durable slot the session record persists into.
// Takes precedence over WithRedis.
func (b *Builder) WithSlot(slot session.Slot) *Builder {
	b.slot = slot
	return b
}

// WithRedis supplies a Redis client; the builder wires a [session.RedisSlot]
// over it using the configured slot key and TTL.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuthAPI describes the withauthapi operation and its observable behavior.
func (b *Builder) WithAuthAPI(api AuthAPI) *Builder {
	b.api = api
	return b
}

// WithNotificationSink describes the withnotificationsink operation and its observable behavior.
func (b *Builder) WithNotificationSink(sink NotificationSink) *Builder {
	b.sink = sink
	return b
}

// WithClock overrides the wall clock the accessor evaluates expiry against.
// Intended for tests.
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build validates the configuration, wires the session store over the chosen
// slot, and hydrates it once. Hydration failures never block construction:
// a slot that cannot be read leaves the client unauthenticated with a
// warning notification, keeping the login path available.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.api == nil {
		return nil, errors.New("auth api required")
	}

	slot := b.slot
	if slot == nil && b.redis != nil {
		slot = session.NewRedisSlot(b.redis, cfg.Session.SlotKey, cfg.Session.SlotTTL)
	}
	if slot == nil {
		slot = session.NewMemorySlot()
	}

	client := &Client{
		config:   cfg,
		store:    session.NewStore(slot, b.clock),
		api:      b.api,
		routes:   cfg.Guard.routeTable(),
		notify:   newNotifyDispatcher(cfg.Notify, b.sink),
		metrics:  NewMetrics(cfg.Metrics),
		cooldown: limiters.NewLoginCooldown(cfg.Auth.MaxLoginFailures, cfg.Auth.FailureCooldown, b.clock),
	}

	ctx := context.Background()
	if err := client.store.Load(ctx); err != nil {
		client.emit(ctx, LevelWarning, "Stored session could not be read; please sign in again.", "store")
	}
	if client.store.RecoveredCorrupt() {
		// Recovered silently per the error contract; only the metric records it.
		client.metricInc(MetricSessionCorruptRecovered)
	}

	b.built = true

	return client, nil
}
