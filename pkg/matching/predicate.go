package matching

import (
	"strings"

	"activity-insights-be/internal/entity"
	"activity-insights-be/pkg/sequence"
)

// eventMatchesStep tests one event against one template step. Every
// predicate the step defines must hold; a step with no predicates matches
// any event.
func eventMatchesStep(e *entity.Event, step entity.TemplateStep) bool {
	if step.Kind != nil && e.Kind != *step.Kind {
		return false
	}
	if step.DomainContains != nil {
		if !strings.Contains(sequence.ContextKey(e.URL), *step.DomainContains) {
			return false
		}
	}
	if step.URLContains != nil && !strings.Contains(e.URL, *step.URLContains) {
		return false
	}
	if step.TextContains != nil {
		if !strings.Contains(strings.ToLower(e.Text), strings.ToLower(*step.TextContains)) {
			return false
		}
	}
	if step.Locator != nil {
		if e.Locator == nil || *e.Locator != *step.Locator {
			return false
		}
	}
	if step.MinDwellMs != nil {
		dwell, ok := e.DwellMs()
		if !ok || dwell < *step.MinDwellMs {
			return false
		}
	}
	return true
}
