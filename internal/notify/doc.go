// Package notify implements the in-process notification channel the session
// core reports outcomes through: login failures, permission violations,
// logout results.
//
// # Components
//
//   - [Sink] — interface for notification consumers (channel, JSON writer, no-op).
//   - [Dispatcher] — buffered async relay with drop-if-full / block-if-full semantics.
//   - [Event] — structured notification with id, timestamp, level, message, metadata.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. It does NOT decide
// which events to emit — that responsibility belongs to the Client and the
// guard evaluation path.
//
// # What this package must NOT do
//
//   - Filter or suppress events based on business logic.
//   - Import sessionkit or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package notify
