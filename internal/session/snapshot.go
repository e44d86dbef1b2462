package session

import (
	"go.abhg.dev/fraglight/internal/engine"
	"go.abhg.dev/fraglight/internal/filter"
	"go.abhg.dev/fraglight/internal/highlight"
)

// Snapshot is an immutable view of a session at one point in time.
type Snapshot struct {
	Source string
	Dark   bool

	// Rules lists the highlight rules in priority order.
	Rules []highlight.Rule

	// Filters lists the filters in priority order,
	// each with its hit status against Result.
	Filters []filter.Status

	// Result is the latest engine result.
	// If the engine failed, this is a degenerate result
	// and Err holds the failure.
	Result engine.Result
	Err    error

	Stylesheet *highlight.Stylesheet
}

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Source:     s.source,
		Dark:       s.rules.Dark(),
		Rules:      s.rules.List().Items(),
		Filters:    filter.Classify(s.filts.List(), s.result.TopMatch, s.result.Matched),
		Result:     s.result,
		Err:        s.err,
		Stylesheet: s.sheet,
	}
}
