// Package filter holds the fragment categories
// that the classification engine is asked to match,
// and classifies engine results per category.
package filter

import (
	"slices"

	"go.abhg.dev/fraglight/internal/rulelist"
	"go.abhg.dev/fraglight/internal/sliceutil"
)

// Filter is a toggleable fragment category.
type Filter struct {
	Name   string
	Active bool
}

var _ rulelist.Item[Filter] = Filter{}

// Key returns the filter's name.
func (f Filter) Key() string { return f.Name }

// IsActive reports whether the filter is sent to the engine.
func (f Filter) IsActive() bool { return f.Active }

// WithActive returns a copy of the filter with Active set.
func (f Filter) WithActive(active bool) Filter {
	f.Active = active
	return f
}

// DefaultNames lists the fragment categories in canonical order.
var DefaultNames = []string{
	"file", "item", "block", "stmt", "expr", "ty",
	"path", "vis", "ident", "lifetime", "literal", "meta",
}

// Defaults returns all default filters, active, in canonical order.
func Defaults() []Filter {
	return sliceutil.Transform(DefaultNames, func(name string) Filter {
		return Filter{Name: name, Active: true}
	})
}

// ActiveNames returns the names of the active filters in list order.
// This is the filter sequence sent to the engine.
func ActiveNames(l *rulelist.List[Filter]) []string {
	return sliceutil.Transform(l.Active(), func(f Filter) string {
		return f.Name
	})
}

// Store owns the filter list of a session.
type Store struct {
	list *rulelist.List[Filter]
}

// NewStore builds a store holding the default filters.
func NewStore() *Store {
	return &Store{list: rulelist.New(Defaults())}
}

// List returns the current filter list.
func (s *Store) List() *rulelist.List[Filter] { return s.list }

// Move relocates a filter.
func (s *Store) Move(name string, target int) {
	s.list = s.list.Move(name, target)
}

// Toggle switches a filter on or off.
func (s *Store) Toggle(name string) {
	s.list = s.list.ToggleActive(name)
}

// SetAll switches every filter on or off.
func (s *Store) SetAll(active bool) {
	s.list = s.list.SetAllActive(active)
}

// Reset restores the default filters in canonical order.
func (s *Store) Reset() {
	s.list = s.list.Reset()
}

// Hit is the outcome of an engine run for a single filter.
type Hit int

const (
	// Unmatched means the source did not parse as the filter's category.
	Unmatched Hit = iota

	// Matched means the source parsed as the filter's category.
	Matched

	// Top means the filter was the first active filter that matched.
	Top
)

func (h Hit) String() string {
	switch h {
	case Unmatched:
		return "unmatched"
	case Matched:
		return "matched"
	case Top:
		return "top"
	default:
		return "unknown"
	}
}

// Symbol returns the mark shown beside a filter with this status:
// "◉" for Top, "✓" for Matched, and nothing otherwise.
func (h Hit) Symbol() string {
	switch h {
	case Top:
		return "◉"
	case Matched:
		return "✓"
	default:
		return ""
	}
}

// HitStatus classifies a filter against an engine result.
//
// Top wins over Matched.
// An empty top match never matches any filter.
func HitStatus(name, top string, matched []string) Hit {
	switch {
	case top != "" && name == top:
		return Top
	case slices.Contains(matched, name):
		return Matched
	default:
		return Unmatched
	}
}

// Status pairs a filter with its hit status.
type Status struct {
	Filter
	Hit Hit
}

// Classify returns the hit status of every filter in list order.
func Classify(l *rulelist.List[Filter], top string, matched []string) []Status {
	return sliceutil.Transform(l.Items(), func(f Filter) Status {
		return Status{Filter: f, Hit: HitStatus(f.Name, top, matched)}
	})
}
