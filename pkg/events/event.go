package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PATTERNS_MINED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewPatternsMinedEvent announces that a mining pass stored patterns for a
// user. Consumers (dashboards, notifiers) live outside this service.
func NewPatternsMinedEvent(userId uuid.UUID, patternsStored int) Event {
	return BaseEvent{
		Type: "PATTERNS_MINED",
		Data: map[string]interface{}{
			"user_id":         userId,
			"patterns_stored": patternsStored,
		},
		OccurredAt: time.Now(),
	}
}
