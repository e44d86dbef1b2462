package highlight

import (
	"fmt"
	"io"
	"strings"

	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/sliceutil"
)

// Layer is a single cascade layer of a compiled [Stylesheet].
type Layer struct {
	// Name of the layer. This is the rule name.
	Name string

	// Selector matches elements carrying the rule's class.
	Selector string

	// Declaration is the CSS declaration block body.
	Declaration string
}

// Stylesheet is a compiled, layered style specification.
//
// Layers are held in declaration order.
// Later layers take precedence over earlier ones.
type Stylesheet struct {
	layers []Layer
}

// Compile builds a stylesheet from rules given highest priority first.
//
// Each rule with Target set produces one layer.
// Layers are declared in reverse rule order,
// so earlier rules win over later ones.
func Compile(rules []Rule) *Stylesheet {
	var layers []Layer
	for i := len(rules) - 1; i >= 0; i-- {
		r := rules[i]
		if !r.Target {
			continue
		}
		layers = append(layers, Layer{
			Name:        r.Name,
			Selector:    "*." + r.Name,
			Declaration: Declaration(r.Style),
		})
	}
	return &Stylesheet{layers: layers}
}

// Declaration returns the CSS declarations for a style.
func Declaration(s Style) string {
	c := color.String(s.Color)
	if s.Background {
		return fmt.Sprintf("background-color: %s; color: %s;", c, color.Readable.Name)
	}
	return fmt.Sprintf("background-color: transparent; color: %s;", c)
}

// Layers returns the layers in declaration order.
func (s *Stylesheet) Layers() []Layer {
	if s == nil || len(s.layers) == 0 {
		return nil
	}
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Order returns layer names from lowest to highest precedence.
func (s *Stylesheet) Order() []string {
	return sliceutil.Transform(s.Layers(), func(l Layer) string {
		return l.Name
	})
}

// WriteCSS writes the stylesheet as CSS text.
// An empty stylesheet writes nothing.
func (s *Stylesheet) WriteCSS(w io.Writer) error {
	layers := s.Layers()
	if len(layers) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@layer %s;\n", strings.Join(s.Order(), ", "))
	for _, l := range layers {
		fmt.Fprintf(&sb, "@layer %s { %s { %s } }\n", l.Name, l.Selector, l.Declaration)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the stylesheet as CSS text.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	_ = s.WriteCSS(&sb) // strings.Builder never fails
	return sb.String()
}
