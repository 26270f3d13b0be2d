package matching

import (
	"math"

	"activity-insights-be/internal/entity"
)

// SuggestionsForNewUsers runs template matching with thresholds relaxed
// proportionally to account age, so users with days of sparse history can
// still receive suggestions. The catalog passed in is never mutated.
func (m *Matcher) SuggestionsForNewUsers(events []*entity.Event, templates []*entity.Template, accountAgeDays int) []entity.TemplateMatch {
	adjusted := m.AdjustForAccountAge(templates, accountAgeDays)
	return m.MatchTemplates(events, adjusted)
}

// AdjustForAccountAge returns a deep copy of the catalog with each
// template's confidence threshold and minimum support scaled by the
// cold-start multiplier. Minimum support is floored and never drops
// below 1.
func (m *Matcher) AdjustForAccountAge(templates []*entity.Template, accountAgeDays int) []*entity.Template {
	multiplier := m.coldStartMultiplier(accountAgeDays)

	adjusted := make([]*entity.Template, len(templates))
	for i, tpl := range templates {
		cp := tpl.Clone()
		cp.ConfidenceThreshold = tpl.ConfidenceThreshold * multiplier
		cp.Criteria.MinSupport = int(math.Max(1, math.Floor(float64(tpl.Criteria.MinSupport)*multiplier)))
		adjusted[i] = cp
	}
	return adjusted
}

func (m *Matcher) coldStartMultiplier(accountAgeDays int) float64 {
	switch {
	case accountAgeDays <= m.cfg.EarlyAccountMaxDays:
		return m.cfg.EarlyAccountMultiplier
	case accountAgeDays <= m.cfg.FirstWeekMaxDays:
		return m.cfg.FirstWeekMultiplier
	default:
		return 1.0
	}
}
