package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventKindClick      EventKind = "click"
	EventKindNavigation EventKind = "navigation"
	EventKindSearch     EventKind = "search"
	EventKindInput      EventKind = "input"
	EventKindScroll     EventKind = "scroll"
	EventKindFocus      EventKind = "focus"
)

// Event is one observed user action captured by the ingestion pipeline.
// Events are immutable; this service only reads them.
type Event struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Kind       EventKind
	URL        string // empty for non-navigation events
	Title      *string
	Text       string
	Locator    *string // DOM path, when the capture layer recorded one
	Metadata   map[string]interface{}
	OccurredAt time.Time
}

// DwellMs reads the dwell duration from the capture metadata, if present.
// The ingestion pipeline writes JSON, so numbers arrive as float64; older
// captures stored plain ints.
func (e *Event) DwellMs() (float64, bool) {
	if e.Metadata == nil {
		return 0, false
	}
	switch v := e.Metadata["dwell_ms"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
