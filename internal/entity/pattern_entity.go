package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StepSeparator joins the kind:domain tokens of a pattern into its stored
// sequence key. Display only; in-memory counting uses a structural key.
const StepSeparator = "->"

// Pattern is a mined recurring behavioral sequence for one user. Patterns
// are upserted per mining pass, keyed by (user, sequence key); a later pass
// supersedes the counts of an earlier one.
type Pattern struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Sequence   []string // ordered "kind:domain" step tokens, length 3..5
	Support    int
	Confidence float64
	FirstSeen  time.Time
	LastSeen   time.Time
}

// SequenceKey is the persisted canonical form of the step sequence.
func (p *Pattern) SequenceKey() string {
	return strings.Join(p.Sequence, StepSeparator)
}
