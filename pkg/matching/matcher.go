package matching

import (
	"fmt"
	"math"
	"sort"

	"activity-insights-be/internal/entity"

	"github.com/google/uuid"
)

type Matcher struct {
	cfg Config
}

func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// MatchTemplates scans the events against every template and returns the
// matches whose confidence clears the template's threshold, sorted by
// confidence descending. Deterministic for identical inputs.
func (m *Matcher) MatchTemplates(events []*entity.Event, templates []*entity.Template) []entity.TemplateMatch {
	var matches []entity.TemplateMatch

	for _, tpl := range templates {
		windows := m.findMatchingSequences(events, tpl)
		if len(windows) == 0 {
			continue
		}

		confidence := m.calculateConfidence(windows, len(events), tpl.Criteria)
		if confidence < tpl.ConfidenceThreshold {
			continue
		}

		matches = append(matches, entity.TemplateMatch{
			TemplateId:      tpl.Id,
			Name:            tpl.Name,
			Category:        tpl.Category,
			Confidence:      confidence,
			MatchedEventIds: collectEventIds(windows),
			Reason:          fmt.Sprintf("%d matching sequences (%.0f%% confidence)", len(windows), confidence*100),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// findMatchingSequences slides a window the width of the template pattern
// across the events (stride 1) and keeps every window whose per-position
// pass ratio reaches the acceptance threshold. Overlapping windows may all
// be accepted.
func (m *Matcher) findMatchingSequences(events []*entity.Event, tpl *entity.Template) [][]*entity.Event {
	width := len(tpl.Steps)
	if width == 0 || width > len(events) {
		return nil
	}

	threshold := 1.0
	if tpl.Criteria.FuzzyMatch {
		threshold = m.cfg.FuzzyThreshold
	}

	var accepted [][]*entity.Event
	for start := 0; start+width <= len(events); start++ {
		window := events[start : start+width]
		passed := 0
		for i, step := range tpl.Steps {
			if eventMatchesStep(window[i], step) {
				passed++
			}
		}
		if float64(passed)/float64(width) >= threshold {
			accepted = append(accepted, window)
		}
	}
	return accepted
}

// calculateConfidence combines how often the template matched (support
// against its configured minimum) with how much of the activity the
// accepted windows span. Overlapping windows double-count events in the
// coverage sum; that is the intended weighting.
func (m *Matcher) calculateConfidence(windows [][]*entity.Event, totalEvents int, criteria entity.MatchCriteria) float64 {
	minSupport := criteria.MinSupport
	if minSupport <= 0 {
		minSupport = 1
	}

	supportScore := math.Min(float64(len(windows))/float64(minSupport), 1)

	covered := 0
	for _, w := range windows {
		covered += len(w)
	}
	coverageScore := math.Min(float64(covered)/float64(totalEvents), 1)

	confidence := m.cfg.SupportWeight*supportScore + m.cfg.CoverageWeight*coverageScore
	return math.Round(confidence*100) / 100
}

// collectEventIds unions the window members, deduplicated, preserving
// first-occurrence order.
func collectEventIds(windows [][]*entity.Event) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, w := range windows {
		for _, e := range w {
			if _, ok := seen[e.Id]; ok {
				continue
			}
			seen[e.Id] = struct{}{}
			ids = append(ids, e.Id)
		}
	}
	return ids
}
