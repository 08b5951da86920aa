// Package pubsub provides a generic publish/subscribe event system used to
// tell observers that registry state changed.
package pubsub

import "time"

// EventType represents the type of event being published.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event represents a published event with a typed payload.
// Seq increases by one for every event a broker publishes, whether or not a
// given subscriber received it, so a jump in Seq means events were dropped.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Seq       uint64
	Timestamp time.Time
}

// Publisher is the write side of a Broker, for code that only emits events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
