package sessionkit

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologSink is a [NotificationSink] that renders events as structured
// zerolog lines, for hosts that feed UI notifications into their log
// pipeline instead of (or alongside) an on-screen toast queue.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a sink over the given logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Emit describes the emit operation and its observable behavior.
func (s *ZerologSink) Emit(_ context.Context, event NotificationEvent) {
	if s == nil {
		return
	}

	var entry *zerolog.Event
	switch event.Level {
	case LevelError:
		entry = s.logger.Error()
	case LevelWarning:
		entry = s.logger.Warn()
	default:
		entry = s.logger.Info()
	}

	// zerolog already claims "level"; keep the notification's own level under
	// a distinct key so both survive in the same line.
	entry = entry.
		Str("notification_id", event.ID).
		Time("emitted_at", event.Timestamp).
		Str("notification_level", string(event.Level))
	if event.Origin != "" {
		entry = entry.Str("origin", event.Origin)
	}
	for k, v := range event.Metadata {
		entry = entry.Str(k, v)
	}

	entry.Msg(event.Message)
}
