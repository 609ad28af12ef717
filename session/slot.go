package session

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by [Slot.Read] when no record is stored.
var ErrSlotEmpty = errors.New("session slot empty")

// ErrSlotUnavailable wraps backend failures of a durable slot (I/O errors,
// Redis connectivity). Hydration degrades these to "no session".
var ErrSlotUnavailable = errors.New("session slot unavailable")

// Slot is the durable key-value cell holding the serialized session record
// under one fixed key. Implementations store opaque bytes; encoding and
// validation belong to the codec.
type Slot interface {
	// Read returns the stored payload, or ErrSlotEmpty when absent.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored payload wholesale.
	Write(ctx context.Context, data []byte) error
	// Delete removes the payload. Deleting an absent payload is not an error.
	Delete(ctx context.Context) error
}
