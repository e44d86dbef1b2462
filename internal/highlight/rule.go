package highlight

import (
	"regexp"

	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/rulelist"
)

// Style specifies how a highlighted fragment is painted.
type Style struct {
	Color color.Color

	// Background paints Color behind the text
	// with a fixed readable foreground,
	// instead of painting the text itself.
	Background bool
}

// Rule is a named, toggleable highlight target.
// Name doubles as the CSS class it applies to.
type Rule struct {
	Name   string
	Target bool
	Style  Style
}

var _ rulelist.Item[Rule] = Rule{}

var _nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidName reports whether name may be used as a rule name.
// Rule names become CSS layer names and class selectors,
// so they're limited to letters, digits, '-', and '_',
// and may not start with a digit or '-'.
func ValidName(name string) bool {
	return _nameRe.MatchString(name)
}

// Key returns the rule's name.
func (r Rule) Key() string { return r.Name }

// IsActive reports whether the rule is highlighted.
func (r Rule) IsActive() bool { return r.Target }

// WithActive returns a copy of the rule with Target set.
func (r Rule) WithActive(target bool) Rule {
	r.Target = target
	return r
}

// Palette holds the default rule lists for both display modes.
type Palette struct {
	Light []Rule
	Dark  []Rule
}

// For returns the default rules for the given mode.
// If the palette has no rules for that mode,
// the other mode's rules are used.
func (p Palette) For(dark bool) []Rule {
	if dark && len(p.Dark) > 0 || len(p.Light) == 0 {
		return p.Dark
	}
	return p.Light
}

func newRule(name, c string, background bool) Rule {
	return Rule{
		Name:   name,
		Target: true,
		Style: Style{
			Color:      color.Named{Name: c},
			Background: background,
		},
	}
}

// Defaults returns the built-in highlight rules for the given mode,
// highest priority first.
//
// In light mode, most fragments are painted as backgrounds;
// in dark mode, as text colors.
// Block and item are always text colors
// since they tend to cover the whole input.
func Defaults(dark bool) []Rule {
	blockColor, itemColor := "darkcyan", "darkblue"
	if dark {
		blockColor, itemColor = "lightblue", "white"
	}

	bg := !dark
	return []Rule{
		newRule("literal", "lightcoral", bg),
		newRule("ident", "orange", bg),
		newRule("path", "lime", bg),
		newRule("pat", "lightgreen", bg),
		newRule("ty", "green", bg),
		newRule("lifetime", "aquamarine", bg),
		newRule("vis", "pink", bg),
		newRule("expr", "cyan", bg),
		newRule("stmt", "lightskyblue", bg),
		newRule("meta", "violet", bg),
		newRule("block", blockColor, false),
		newRule("item", itemColor, false),
	}
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{
		Light: Defaults(false),
		Dark:  Defaults(true),
	}
}
