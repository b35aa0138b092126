// Package pubsub provides the generic publish/subscribe broker the editor
// uses to announce document mutations. The rendering layer subscribes and
// reacts to change events instead of observing the tree implicitly.
package pubsub

import (
	"context"
	"time"
)

// EventType classifies a published event.
type EventType string

const (
	// EditEvent fires after a buffer change mutates the span tree.
	EditEvent EventType = "edit"
	// StyleEvent fires after a character style add/remove/toggle.
	StyleEvent EventType = "style"
	// ParagraphEvent fires after a paragraph type or list level change.
	ParagraphEvent EventType = "paragraph"
	// LoadEvent fires after the whole document is replaced, e.g. by a
	// markup codec.
	LoadEvent EventType = "load"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
