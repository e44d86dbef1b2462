package highlight

import "go.abhg.dev/fraglight/internal/rulelist"

// Store owns the highlight rule list of a session.
//
// The list itself is immutable;
// every mutation replaces it with a new value.
// Use [Store.List] and pointer comparison to detect changes.
type Store struct {
	palette Palette
	dark    bool
	list    *rulelist.List[Rule]
}

// NewStore builds a store holding the palette's defaults
// for the given mode.
func NewStore(palette Palette, dark bool) *Store {
	return &Store{
		palette: palette,
		dark:    dark,
		list:    rulelist.New(palette.For(dark)),
	}
}

// List returns the current rule list.
func (s *Store) List() *rulelist.List[Rule] { return s.list }

// Dark reports whether the store holds the dark mode defaults.
func (s *Store) Dark() bool { return s.dark }

// Move relocates a rule to a new priority.
func (s *Store) Move(name string, target int) {
	s.list = s.list.Move(name, target)
}

// Toggle switches a rule on or off.
func (s *Store) Toggle(name string) {
	s.list = s.list.ToggleActive(name)
}

// SetAll switches every rule on or off.
func (s *Store) SetAll(target bool) {
	s.list = s.list.SetAllActive(target)
}

// SetStyle changes the color of a rule.
func (s *Store) SetStyle(name string, style Style) {
	s.list = s.list.Update(name, func(r Rule) Rule {
		r.Style = style
		return r
	})
}

// Reset restores the default rules for the current mode.
func (s *Store) Reset() {
	s.list = s.list.Reset()
}

// SetDark switches display modes.
// Switching modes replaces the rule list
// with the defaults for the new mode,
// discarding edits.
func (s *Store) SetDark(dark bool) {
	if s.dark == dark {
		return
	}
	s.dark = dark
	s.list = rulelist.New(s.palette.For(dark))
}
