package sequence

import (
	"sort"
	"strings"
	"time"

	"activity-insights-be/internal/entity"

	"github.com/google/uuid"
)

// keySeparator joins step tokens into the counting-map key. The unit
// separator cannot occur in an event kind or a hostname, so tokens that
// happen to contain the display separator "->" cannot collide.
const keySeparator = "\x1f"

// StepToken is the "kind:domain" label of one event inside a run.
func StepToken(e *entity.Event) string {
	return string(e.Kind) + ":" + ContextKey(e.URL)
}

// Candidate is one counted subsequence with its occurrence data.
type Candidate struct {
	Tokens    []string
	Support   int
	FirstSeen time.Time
	LastSeen  time.Time
}

// CandidateSet accumulates subsequence counts across all runs of a single
// user. Mixing runs from different users in one set is a caller error: the
// set records the owning user from the first event it sees.
type CandidateSet struct {
	UserId    uuid.UUID
	TotalRuns int

	byKey map[string]*Candidate
	order []string
}

// CountWindows enumerates every contiguous subsequence with length in
// [minLen, maxLen] of every run (stride-1 sliding window) and counts
// occurrences of each distinct token sequence across all runs.
func CountWindows(runs []Run, minLen, maxLen int) *CandidateSet {
	set := &CandidateSet{
		TotalRuns: len(runs),
		byKey:     make(map[string]*Candidate),
	}

	for _, run := range runs {
		if set.UserId == uuid.Nil && len(run.Events) > 0 {
			set.UserId = run.Events[0].UserId
		}
		tokens := make([]string, len(run.Events))
		for i, e := range run.Events {
			tokens[i] = StepToken(e)
		}

		for length := minLen; length <= maxLen && length <= len(tokens); length++ {
			for start := 0; start+length <= len(tokens); start++ {
				window := tokens[start : start+length]
				set.add(window, run.Events[start].OccurredAt, run.Events[start+length-1].OccurredAt)
			}
		}
	}

	return set
}

func (s *CandidateSet) add(tokens []string, first, last time.Time) {
	key := strings.Join(tokens, keySeparator)
	c, ok := s.byKey[key]
	if !ok {
		c = &Candidate{
			Tokens:    append([]string(nil), tokens...),
			FirstSeen: first,
		}
		s.byKey[key] = c
		s.order = append(s.order, key)
	}
	c.Support++
	if last.After(c.LastSeen) {
		c.LastSeen = last
	}
	if first.Before(c.FirstSeen) {
		c.FirstSeen = first
	}
}

// AtLeast returns the candidates whose support clears the threshold,
// sorted by support descending. Ties keep first-seen order, which makes
// the result deterministic for a given event stream.
func (s *CandidateSet) AtLeast(support int) []Candidate {
	var out []Candidate
	for _, key := range s.order {
		c := s.byKey[key]
		if c.Support >= support {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Support > out[j].Support
	})
	return out
}

// Len reports the number of distinct subsequences counted.
func (s *CandidateSet) Len() int {
	return len(s.byKey)
}
