package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileSlotLifecycle(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	if _, err := slot.Read(ctx); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty before write, got %v", err)
	}

	payload := []byte(`{"tokens":{"access":"a1","refresh":"r1"},"user":{"id":"1"}}`)
	if err := slot.Write(ctx, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload mismatch: got %s", got)
	}

	if err := slot.Delete(ctx); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := slot.Delete(ctx); err != nil {
		t.Fatalf("second delete must be idempotent: %v", err)
	}
	if _, err := slot.Read(ctx); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty after delete, got %v", err)
	}
}

func TestFileSlotOverwrite(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	if err := slot.Write(ctx, []byte("first")); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := slot.Write(ctx, []byte("second")); err != nil {
		t.Fatalf("write second: %v", err)
	}

	got, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected wholesale overwrite, got %s", got)
	}
}
