package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSlotKey is the fixed key a Redis slot stores the record under when
// no key is configured.
const DefaultSlotKey = "sessionkit:session"

// RedisSlot is a [Slot] backed by a single Redis key, for clients that share
// durable state through an external store. An optional TTL bounds how long a
// stale record can outlive the refresh window.
type RedisSlot struct {
	redis redis.UniversalClient
	key   string
	ttl   time.Duration
}

// NewRedisSlot creates a Redis-backed slot. key falls back to
// [DefaultSlotKey] when empty; ttl <= 0 means no expiry.
func NewRedisSlot(client redis.UniversalClient, key string, ttl time.Duration) *RedisSlot {
	if key == "" {
		key = DefaultSlotKey
	}
	return &RedisSlot{
		redis: client,
		key:   key,
		ttl:   ttl,
	}
}

// Read describes the read operation and its observable behavior.
func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return data, nil
}

// Write describes the write operation and its observable behavior.
func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.redis.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}

// Delete describes the delete operation and its observable behavior.
func (s *RedisSlot) Delete(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}
