package session

import (
	"errors"
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := &Record{
		Tokens: TokenBundle{
			Access:           "a1",
			Refresh:          "r1",
			AccessExpiresAt:  now.Add(time.Hour),
			RefreshExpiresAt: now.Add(720 * time.Hour),
		},
		User: Profile{ID: "1", Email: "alice@example.com", Role: RoleAdmin},
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not json", []byte("{broken")},
		{"wrong shape", []byte(`[1,2,3]`)},
		{"missing access", []byte(`{"tokens":{"refresh":"r1"},"user":{"id":"1"}}`)},
		{"missing refresh", []byte(`{"tokens":{"access":"a1"},"user":{"id":"1"}}`)},
		{"missing user id", []byte(`{"tokens":{"access":"a1","refresh":"r1"},"user":{}}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.data); !errors.Is(err, ErrRecordCorrupt) {
				t.Fatalf("expected ErrRecordCorrupt, got %v", err)
			}
		})
	}
}

func TestDecodeKeepsUnknownRole(t *testing.T) {
	// Role validation is the guard's job; the codec only enforces shape.
	data := []byte(`{"tokens":{"access":"a1","refresh":"r1"},"user":{"id":"1","role":"superuser"}}`)

	rec, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.User.Role.Known() {
		t.Fatalf("expected unknown role, got %q", rec.User.Role)
	}
}

func TestEncodeRejectsIncompleteBundle(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
	if _, err := Encode(&Record{Tokens: TokenBundle{Access: "a1"}}); err == nil {
		t.Fatal("expected error for missing refresh token")
	}
}
