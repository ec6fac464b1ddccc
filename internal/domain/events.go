package domain

import "strings"

const (
	ObjectCreatedEvent = "s3:ObjectCreated"
	ObjectRemovedEvent = "s3:ObjectRemoved"
)

// EventType is the closed set of actions a notification record can carry.
type EventType int

const (
	EventUnknown EventType = iota
	EventCreated
	EventRemoved
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Classify maps a vendor event name (i.e. "s3:ObjectCreated:Put") to an
// EventType. Matching is by substring and case-sensitive, which is the
// vendor's actual contract; nothing else should inspect raw event names.
func Classify(eventName string) EventType {
	switch {
	case strings.Contains(eventName, ObjectCreatedEvent):
		return EventCreated
	case strings.Contains(eventName, ObjectRemovedEvent):
		return EventRemoved
	default:
		return EventUnknown
	}
}
