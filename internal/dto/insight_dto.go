package dto

import (
	"time"

	"github.com/google/uuid"
)

type TemplateSuggestionResponse struct {
	TemplateId      uuid.UUID   `json:"template_id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Confidence      float64     `json:"confidence"`
	MatchedEventIds []uuid.UUID `json:"matched_event_ids"`
	Reason          string      `json:"reason"`
}

type MinedPatternResponse struct {
	Id         uuid.UUID `json:"id"`
	Sequence   []string  `json:"sequence"`
	Support    int       `json:"support"`
	Confidence float64   `json:"confidence"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
}

type MiningRunSummary struct {
	UsersProcessed int `json:"users_processed"`
	UsersFailed    int `json:"users_failed"`
	PatternsStored int `json:"patterns_stored"`
}

// RunMiningRequest optionally narrows an async mining run to one user.
type RunMiningRequest struct {
	UserId *uuid.UUID `json:"user_id"`
}

// MiningRequestMessage is the payload published to the in-process mining
// topic and consumed by the background worker.
type MiningRequestMessage struct {
	UserId *uuid.UUID `json:"user_id,omitempty"`
}
