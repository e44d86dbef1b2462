package flagvalue

import (
	"flag"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Paint is a flag value of the form NAME=COLOR or NAME=COLOR:bg
// assigning a color to the highlight rule NAME.
// The ":bg" suffix paints the color as a background.
type Paint struct {
	Name       string
	Color      string
	Background bool
}

var _ flag.Getter = (*Paint)(nil)

// Get returns the Paint.
func (p *Paint) Get() any { return *p }

// String returns the value in the form it was parsed from.
func (p *Paint) String() string {
	if p.Name == "" {
		return ""
	}
	s := p.Name + "=" + p.Color
	if p.Background {
		s += ":bg"
	}
	return s
}

// Set parses NAME=COLOR[:bg].
func (p *Paint) Set(s string) error {
	name, c, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.Wrap(fmt.Errorf("expected NAME=COLOR[:bg], got %q", s))
	}

	var n Name
	if err := n.Set(name); err != nil {
		return errtrace.Wrap(err)
	}

	c, bg := strings.CutSuffix(strings.TrimSpace(c), ":bg")
	c = strings.TrimSpace(c)
	if c == "" {
		return errtrace.Wrap(fmt.Errorf("%v: color is required", name))
	}

	*p = Paint{Name: string(n), Color: c, Background: bg}
	return nil
}
