package color

import "strings"

// Entry is a named color in the palette.
type Entry struct {
	Name string

	// Hex is the sRGB equivalent of Name.
	// It's used only where CSS names aren't understood,
	// such as terminals.
	Hex string
}

// Palette lists the named colors offered to users, in display order.
var Palette = []Entry{
	{"lightcoral", "#f08080"},
	{"orange", "#ffa500"},
	{"lime", "#00ff00"},
	{"lightgreen", "#90ee90"},
	{"green", "#008000"},
	{"aquamarine", "#7fffd4"},
	{"pink", "#ffc0cb"},
	{"cyan", "#00ffff"},
	{"lightskyblue", "#87cefa"},
	{"violet", "#ee82ee"},
	{"lightblue", "#add8e6"},
	{"darkcyan", "#008b8b"},
	{"white", "#ffffff"},
	{"darkblue", "#00008b"},
}

// Readable is the foreground paired with every background highlight.
var Readable = Entry{"black", "#000000"}

// Hex returns a hex literal for the color.
//
// Custom colors are returned as-is.
// Named colors are looked up in the palette;
// ok is false for names outside it.
func Hex(c Color) (hex string, ok bool) {
	switch c := c.(type) {
	case Custom:
		return c.Hex, c.Hex != ""
	case Named:
		name := strings.ToLower(c.Name)
		if name == Readable.Name {
			return Readable.Hex, true
		}
		for _, e := range Palette {
			if e.Name == name {
				return e.Hex, true
			}
		}
	}
	return "", false
}

// Next returns the color after c when stepping through the choices
// offered to users: every palette entry in order, then [DefaultCustom],
// then back to the first palette entry.
// Names outside the palette step to the first entry.
func Next(c Color) Color {
	named, ok := c.(Named)
	if !ok {
		return Named{Name: Palette[0].Name}
	}

	name := strings.ToLower(named.Name)
	for i, e := range Palette {
		if e.Name != name {
			continue
		}
		if i+1 < len(Palette) {
			return Named{Name: Palette[i+1].Name}
		}
		return DefaultCustom
	}
	return Named{Name: Palette[0].Name}
}
