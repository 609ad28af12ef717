package notify

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification for the UI layer.
type Level string

const (
	// LevelSuccess is an exported constant or variable used by the session core.
	LevelSuccess Level = "success"
	// LevelError is an exported constant or variable used by the session core.
	LevelError Level = "error"
	// LevelInfo is an exported constant or variable used by the session core.
	LevelInfo Level = "info"
	// LevelWarning is an exported constant or variable used by the session core.
	LevelWarning Level = "warning"
)

// Event is the canonical notification model used by internal dispatching and
// root APIs.
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Level     Level             `json:"level"`
	Message   string            `json:"message"`
	Origin    string            `json:"origin,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// New builds an event with a fresh ID and the current timestamp.
func New(level Level, message, origin string) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Origin:    origin,
	}
}

// Sink receives emitted notifications.
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink drops notifications.
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, Event) {}

// ChannelSink writes notifications into a buffered channel.
type ChannelSink struct {
	events chan Event
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan Event, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, event Event) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(ctx context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
