package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRecordCorrupt is returned by [Decode] when the slot payload does not
// parse as a well-formed session record. [Store.Load] swallows it.
var ErrRecordCorrupt = errors.New("session record corrupt")

// Encode serializes a record for the durable slot as a single JSON document
// of shape {"tokens": {...}, "user": {...}}.
func Encode(r *Record) ([]byte, error) {
	if r == nil {
		return nil, errors.New("nil record")
	}
	if r.Tokens.Access == "" || r.Tokens.Refresh == "" {
		return nil, errors.New("record requires both access and refresh tokens")
	}

	return json.Marshal(r)
}

// Decode parses a slot payload into a well-typed record. It either succeeds
// fully or fails with [ErrRecordCorrupt]; it never produces a partially
// populated record. An unknown role decodes fine — role enforcement belongs
// to the guard, which fails closed on it.
func Decode(data []byte) (*Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrRecordCorrupt)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupt, err)
	}

	if rec.Tokens.Access == "" {
		return nil, fmt.Errorf("%w: missing access token", ErrRecordCorrupt)
	}
	if rec.Tokens.Refresh == "" {
		return nil, fmt.Errorf("%w: missing refresh token", ErrRecordCorrupt)
	}
	if rec.User.ID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrRecordCorrupt)
	}

	out := rec
	return &out, nil
}
