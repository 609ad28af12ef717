package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Store is the single source of truth for the session record. It keeps one
// in-memory record mirrored into a durable [Slot] and is the only component
// allowed to write either. Reads return copies; mutations replace the record
// wholesale.
//
//	Docs: docs/session.md
type Store struct {
	mu       sync.RWMutex
	slot     Slot
	clock    func() time.Time
	record   *Record
	hydrated bool

	recoveredCorrupt bool
}

// NewStore creates a store over the given slot. clock may be nil, in which
// case time.Now is used; tests inject a fake clock to pin expiry boundaries.
func NewStore(slot Slot, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		slot:  slot,
		clock: clock,
	}
}

// Load hydrates the in-memory record from the durable slot. A missing or
// undecodable payload hydrates as "no session" and returns nil — a corrupt
// slot must never break the login path. Only backend unavailability is
// reported, and even then the store still counts as hydrated-absent so the
// guard leaves its Pending state.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = nil
	s.hydrated = true
	s.recoveredCorrupt = false

	data, err := s.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return nil
		}
		return err
	}

	record, err := Decode(data)
	if err != nil {
		// Fail closed: corrupt payloads are equivalent to no session.
		s.recoveredCorrupt = true
		return nil
	}

	s.record = record
	return nil
}

// Save constructs a record from the token bundle and user profile, persists
// it to the slot, and replaces the in-memory record. The previous record is
// overwritten wholesale. When the slot write fails the in-memory state is
// left untouched and the error is returned.
func (s *Store) Save(ctx context.Context, tokens TokenBundle, user Profile) error {
	record := &Record{
		Tokens: tokens,
		User:   user,
	}

	data, err := Encode(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Write(ctx, data); err != nil {
		return err
	}

	s.record = record
	s.hydrated = true
	return nil
}

// Clear removes the durable record and resets the in-memory state to absent.
// Idempotent: clearing an absent session succeeds and changes nothing.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Delete(ctx); err != nil {
		return err
	}

	s.record = nil
	s.hydrated = true
	return nil
}

// RecoveredCorrupt reports whether the last Load found a payload it could
// not decode and recovered by treating it as "no session".
func (s *Store) RecoveredCorrupt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recoveredCorrupt
}

// Hydrated reports whether Load, Save, or Clear has produced a defined
// authenticated/unauthenticated answer. Before the first of those the guard
// renders a loading placeholder instead of redirecting.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Snapshot returns a copy of the current record, or nil when absent.
func (s *Store) Snapshot() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

// CurrentUser returns a copy of the logged-in user's profile, or nil.
func (s *Store) CurrentUser() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return nil
	}
	user := s.record.User
	return &user
}

// Authenticated reports whether an access token exists and its expiry is
// strictly in the future. This is a pure function of wall-clock time,
// recomputed on every call and never cached: a session can flip to
// unauthenticated between two calls without any event firing.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil || s.record.Tokens.Access == "" {
		return false
	}
	return s.clock().Before(s.record.Tokens.AccessExpiresAt)
}

// Expired reports whether the given expiry instant has passed. A zero instant
// counts as already expired (fail closed on missing input).
func (s *Store) Expired(expiresAt time.Time) bool {
	if expiresAt.IsZero() {
		return true
	}
	return !s.clock().Before(expiresAt)
}

// AccessToken returns the raw access credential, or "" when absent.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return ""
	}
	return s.record.Tokens.Access
}

// RefreshToken returns the raw refresh credential, or "" when absent.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return ""
	}
	return s.record.Tokens.Refresh
}
