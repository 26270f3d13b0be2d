// Package sequence holds the shared primitives for behavioral sequence
// analysis: domain-context extraction, run segmentation and sliding-window
// subsequence counting. Everything here is a pure transform over an
// in-memory, timestamp-ascending event slice.
package sequence

import (
	"net/url"
	"strings"

	"activity-insights-be/internal/entity"
)

// MinRunLength is the shortest context run worth mining. Shorter runs are
// dropped during segmentation, never emitted.
const MinRunLength = 3

// ContextKey derives the grouping key for an event URL: the hostname with
// a leading "www." stripped. Malformed or missing URLs fall back to the raw
// string; extraction never fails and never drops an event.
func ContextKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Run is a maximal contiguous subsequence of one user's events sharing the
// same context key. Runs are transient; they live for one mining pass.
type Run struct {
	Key    string
	Events []*entity.Event
}

// SegmentRuns walks a timestamp-ascending event slice once and groups
// contiguous same-context events into runs of length >= MinRunLength.
// Sorting is the caller's obligation.
func SegmentRuns(events []*entity.Event) []Run {
	var runs []Run

	var current Run
	for _, e := range events {
		key := ContextKey(e.URL)
		if len(current.Events) == 0 || key == current.Key {
			current.Key = key
			current.Events = append(current.Events, e)
			continue
		}
		if len(current.Events) >= MinRunLength {
			runs = append(runs, current)
		}
		current = Run{Key: key, Events: []*entity.Event{e}}
	}
	if len(current.Events) >= MinRunLength {
		runs = append(runs, current)
	}

	return runs
}
