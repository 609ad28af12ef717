package session

import (
	"context"
	"sync"
)

// MemorySlot is an in-process [Slot] intended for tests and ephemeral
// sessions that should not survive a restart.
type MemorySlot struct {
	mu      sync.Mutex
	data    []byte
	present bool
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Read describes the read operation and its observable behavior.
func (s *MemorySlot) Read(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Write describes the write operation and its observable behavior.
func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.present = true
	return nil
}

// Delete describes the delete operation and its observable behavior.
func (s *MemorySlot) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.present = false
	return nil
}
