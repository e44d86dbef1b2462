// Package color defines the colors a highlight rule may use.
//
// A [Color] is either a [Named] color drawn from [Palette],
// or a [Custom] color holding an arbitrary color literal.
// Neither is validated beyond its shape:
// both pass through to style output unmodified.
package color

import "strings"

type (
	// Color is a highlight color.
	Color interface{ color() }

	// Named is a color referenced by its CSS name.
	Named struct {
		Name string
	}

	// Custom is a color given as a literal,
	// typically a hex string like "#aa0000".
	Custom struct {
		Hex string
	}
)

var (
	_ Color = Named{}
	_ Color = Custom{}
)

func (Named) color()  {}
func (Custom) color() {}

// DefaultCustom is the value a color switches to
// when the user first picks a custom color.
var DefaultCustom = Custom{Hex: "#aa0000"}

// String returns the CSS value for the given color.
// It returns an empty string for nil.
func String(c Color) string {
	switch c := c.(type) {
	case Named:
		return c.Name
	case Custom:
		return c.Hex
	default:
		return ""
	}
}

// Parse interprets s as a color.
// Values starting with '#', "rgb(" or "hsl("
// are custom literals; anything else is a name.
func Parse(s string) Color {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"#", "rgb(", "rgba(", "hsl(", "hsla("} {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			return Custom{Hex: s}
		}
	}
	return Named{Name: s}
}
