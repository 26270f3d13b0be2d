// Package matching scans a user's recent activity against the workflow
// template catalog: per-position predicate tests, a stride-1 sliding window
// per template, and a support/coverage confidence score. The matcher is a
// pure function of its inputs and safe to call concurrently.
package matching

// Config carries the matching policy constants. They are tunable knobs,
// not derived values.
type Config struct {
	// FuzzyThreshold is the fraction of window positions that must pass
	// for a fuzzy template; exact templates require 1.0.
	FuzzyThreshold float64
	// SupportWeight and CoverageWeight combine the two partial scores
	// into the final confidence.
	SupportWeight  float64
	CoverageWeight float64

	// Cold-start relaxation: accounts at most EarlyAccountMaxDays old get
	// EarlyAccountMultiplier, accounts at most FirstWeekMaxDays old get
	// FirstWeekMultiplier, everyone else 1.0.
	EarlyAccountMaxDays    int
	EarlyAccountMultiplier float64
	FirstWeekMaxDays       int
	FirstWeekMultiplier    float64
}

func DefaultConfig() Config {
	return Config{
		FuzzyThreshold:         0.7,
		SupportWeight:          0.7,
		CoverageWeight:         0.3,
		EarlyAccountMaxDays:    3,
		EarlyAccountMultiplier: 0.5,
		FirstWeekMaxDays:       7,
		FirstWeekMultiplier:    0.7,
	}
}
