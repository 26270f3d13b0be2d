package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateStep is one position of a workflow template: a predicate bundle
// tested against a single event. Every non-nil predicate must hold for the
// step to match; a step with no predicates matches any event.
type TemplateStep struct {
	Kind           *EventKind `json:"kind,omitempty"`
	DomainContains *string    `json:"domain_contains,omitempty"`
	URLContains    *string    `json:"url_contains,omitempty"`
	TextContains   *string    `json:"text_contains,omitempty"` // case-insensitive
	Locator        *string    `json:"locator,omitempty"`
	MinDwellMs     *float64   `json:"min_dwell_ms,omitempty"`
}

// MatchCriteria controls how windows accepted for a template are scored.
type MatchCriteria struct {
	MinSupport    int     `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
	FuzzyMatch    bool    `json:"fuzzy_match"`
}

// Template is a hand-authored workflow pattern from the catalog. Templates
// are read-only inputs here; their lifecycle is owned elsewhere.
type Template struct {
	Id                  uuid.UUID
	Name                string
	Description         string
	Category            string
	Steps               []TemplateStep
	Criteria            MatchCriteria
	ConfidenceThreshold float64
	Enabled             bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Clone returns a deep copy so threshold adjustments never touch the catalog.
func (t *Template) Clone() *Template {
	cp := *t
	cp.Steps = make([]TemplateStep, len(t.Steps))
	copy(cp.Steps, t.Steps)
	return &cp
}

// TemplateMatch is a derived, non-persisted match result for one template.
type TemplateMatch struct {
	TemplateId      uuid.UUID
	Name            string
	Category        string
	Confidence      float64
	MatchedEventIds []uuid.UUID // deduplicated across overlapping windows
	Reason          string
}
