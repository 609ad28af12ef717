package sessionkit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologSinkRendersStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf))

	sink.Emit(context.Background(), NotificationEvent{
		ID:        "n-1",
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Level:     LevelWarning,
		Message:   "You do not have permission to view this page.",
		Origin:    "guard",
		Metadata:  map[string]string{"path": "/admin/orders"},
	})

	line := buf.String()
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, line)
	}

	if fields["level"] != "warn" {
		t.Fatalf("zerolog level = %v", fields["level"])
	}
	if fields["notification_level"] != "warning" {
		t.Fatalf("notification_level = %v", fields["notification_level"])
	}
	if fields["notification_id"] != "n-1" {
		t.Fatalf("notification_id = %v", fields["notification_id"])
	}
	if fields["origin"] != "guard" {
		t.Fatalf("origin = %v", fields["origin"])
	}
	if fields["path"] != "/admin/orders" {
		t.Fatalf("path = %v", fields["path"])
	}
	if !strings.Contains(line, "permission") {
		t.Fatalf("message missing from line: %s", line)
	}
}

func TestZerologSinkLevelMapping(t *testing.T) {
	tests := []struct {
		level NotificationLevel
		want  string
	}{
		{LevelError, "error"},
		{LevelWarning, "warn"},
		{LevelSuccess, "info"},
		{LevelInfo, "info"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		sink := NewZerologSink(zerolog.New(&buf))
		sink.Emit(context.Background(), NotificationEvent{Level: tt.level, Message: "x"})

		var fields map[string]any
		if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if fields["level"] != tt.want {
			t.Fatalf("level %q mapped to %v, want %q", tt.level, fields["level"], tt.want)
		}
	}
}
