package sessionkit

import (
	"context"

	internalnotify "github.com/apexboard/sessionkit/internal/notify"
)

func newNotification(level NotificationLevel, message, origin string) NotificationEvent {
	return internalnotify.New(level, message, origin)
}

type notifyDispatcher struct {
	inner *internalnotify.Dispatcher
}

func newNotifyDispatcher(cfg NotifyConfig, sink NotificationSink) *notifyDispatcher {
	inner := internalnotify.NewDispatcher(internalnotify.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
		DropIfFull: cfg.DropIfFull,
	}, sink)
	if inner == nil {
		return nil
	}
	return &notifyDispatcher{inner: inner}
}

// Emit describes the emit operation and its observable behavior.
func (d *notifyDispatcher) Emit(ctx context.Context, event NotificationEvent) {
	if d == nil {
		return
	}
	d.inner.Emit(ctx, event)
}

// Close describes the close operation and its observable behavior.
func (d *notifyDispatcher) Close() {
	if d == nil {
		return
	}
	d.inner.Close()
}

// Dropped describes the dropped operation and its observable behavior.
func (d *notifyDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.inner.Dropped()
}
