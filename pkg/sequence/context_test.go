package sequence

import (
	"testing"
	"time"

	"activity-insights-be/internal/entity"

	"github.com/google/uuid"
)

func TestContextKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain host", "https://example.com/page", "example.com"},
		{"www stripped", "https://www.example.com/page", "example.com"},
		{"subdomain kept", "https://docs.example.com/api", "docs.example.com"},
		{"www only stripped once", "https://www.www.example.com", "www.example.com"},
		{"port ignored", "http://example.com:8080/x", "example.com"},
		{"no host falls back to raw", "notaurl", "notaurl"},
		{"empty string", "", ""},
		{"malformed falls back to raw", "http://[::1:bad", "http://[::1:bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextKey(tt.url)
			if got != tt.want {
				t.Errorf("ContextKey(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func makeEvents(userId uuid.UUID, urls ...string) []*entity.Event {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	events := make([]*entity.Event, len(urls))
	for i, u := range urls {
		events[i] = &entity.Event{
			Id:         uuid.New(),
			UserId:     userId,
			Kind:       entity.EventKindClick,
			URL:        u,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return events
}

func TestSegmentRuns(t *testing.T) {
	userId := uuid.New()

	t.Run("empty input yields no runs", func(t *testing.T) {
		if runs := SegmentRuns(nil); len(runs) != 0 {
			t.Errorf("got %d runs, want 0", len(runs))
		}
	})

	t.Run("single context spanning whole input", func(t *testing.T) {
		events := makeEvents(userId,
			"https://a.com/1", "https://a.com/2", "https://a.com/3", "https://a.com/4")
		runs := SegmentRuns(events)
		if len(runs) != 1 {
			t.Fatalf("got %d runs, want 1", len(runs))
		}
		if runs[0].Key != "a.com" || len(runs[0].Events) != 4 {
			t.Errorf("run = {%s, %d events}, want {a.com, 4 events}", runs[0].Key, len(runs[0].Events))
		}
	})

	t.Run("short runs dropped", func(t *testing.T) {
		events := makeEvents(userId,
			"https://a.com/1", "https://a.com/2", "https://a.com/3",
			"https://b.com/1", "https://b.com/2",
			"https://c.com/1", "https://c.com/2", "https://c.com/3")
		runs := SegmentRuns(events)
		if len(runs) != 2 {
			t.Fatalf("got %d runs, want 2", len(runs))
		}
		if runs[0].Key != "a.com" || runs[1].Key != "c.com" {
			t.Errorf("run keys = [%s, %s], want [a.com, c.com]", runs[0].Key, runs[1].Key)
		}
	})

	t.Run("trailing short run dropped", func(t *testing.T) {
		events := makeEvents(userId,
			"https://a.com/1", "https://a.com/2", "https://a.com/3",
			"https://b.com/1")
		runs := SegmentRuns(events)
		if len(runs) != 1 {
			t.Fatalf("got %d runs, want 1", len(runs))
		}
	})

	t.Run("malformed urls segment without dropping events", func(t *testing.T) {
		events := makeEvents(userId, "x", "x", "x")
		runs := SegmentRuns(events)
		if len(runs) != 1 || runs[0].Key != "x" {
			t.Fatalf("got %d runs, want 1 keyed by raw string", len(runs))
		}
	})

	t.Run("emitted runs preserve relative order", func(t *testing.T) {
		events := makeEvents(userId,
			"https://a.com/1", "https://a.com/2", "https://a.com/3",
			"https://b.com/1", "https://b.com/2", "https://b.com/3")
		runs := SegmentRuns(events)

		var flattened []*entity.Event
		for _, r := range runs {
			flattened = append(flattened, r.Events...)
		}
		// Both runs survive here, so the concatenation must equal the input.
		if len(flattened) != len(events) {
			t.Fatalf("flattened %d events, want %d", len(flattened), len(events))
		}
		for i := range events {
			if flattened[i].Id != events[i].Id {
				t.Errorf("event %d out of order", i)
			}
		}
	})
}
