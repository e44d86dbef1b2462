package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/highlight"
	"golang.org/x/net/html"
)

// segment is a run of text painted in one style.
// Empty colors leave the terminal default in place.
type segment struct {
	Text string
	FG   string
	BG   string
}

var _voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "wbr": true,
}

// paintStyle is the effective style of one element.
type paintStyle struct {
	fg, bg string
	ok     bool // whether any active rule matched
}

// segments splits engine markup into styled text runs,
// resolving styles the way the compiled stylesheet would in a browser:
// an element takes the declaration of its highest-priority active rule,
// text takes its color from the nearest styled element,
// and backgrounds show through elements painted in the foreground.
//
// rootClass is the class of the element enclosing the markup.
func segments(markup, rootClass string, rules []highlight.Rule) []segment {
	styles := make(map[string]paintStyle, len(rules))
	rank := make(map[string]int, len(rules))
	for i, r := range rules {
		if !r.Target {
			continue
		}
		rank[r.Name] = i
		styles[r.Name] = styleOf(r.Style)
	}

	resolve := func(classes []string) paintStyle {
		best := -1
		var ps paintStyle
		for _, c := range classes {
			if i, ok := rank[c]; ok && (best < 0 || i < best) {
				best = i
				ps = styles[c]
			}
		}
		return ps
	}

	stack := []paintStyle{resolve(strings.Fields(rootClass))}
	var segs []segment
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				// Unparseable markup: show the rest unstyled.
				segs = append(segs, segment{Text: string(z.Raw())})
			}
			return segs

		case html.StartTagToken:
			name, more := z.TagName()
			if _voidElements[string(name)] {
				continue // never closed
			}

			var classes []string
			for more {
				var k, v []byte
				k, v, more = z.TagAttr()
				if string(k) == "class" {
					classes = strings.Fields(string(v))
				}
			}
			stack = append(stack, resolve(classes))

		case html.EndTagToken:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			seg := segment{Text: text}
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].ok {
					seg.FG = stack[i].fg
					break
				}
			}
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].bg != "" {
					seg.BG = stack[i].bg
					break
				}
			}
			segs = append(segs, seg)
		}
	}
}

func styleOf(s highlight.Style) paintStyle {
	hex, ok := color.Hex(s.Color)
	if !ok || !strings.HasPrefix(hex, "#") {
		hex = ""
	}
	if s.Background {
		return paintStyle{fg: color.Readable.Hex, bg: hex, ok: true}
	}
	return paintStyle{fg: hex, ok: true}
}

// paint renders engine markup for the terminal.
func paint(markup, rootClass string, rules []highlight.Rule) string {
	var sb strings.Builder
	for _, seg := range segments(markup, rootClass, rules) {
		style := lipgloss.NewStyle()
		if seg.FG != "" {
			style = style.Foreground(lipgloss.Color(seg.FG))
		}
		if seg.BG != "" {
			style = style.Background(lipgloss.Color(seg.BG))
		}

		// Render lines separately:
		// lipgloss pads multi-line blocks to a common width.
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				sb.WriteString("\n")
			}
			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}
	return sb.String()
}

// chip renders a rule name in the rule's own style.
func chip(r highlight.Rule) string {
	ps := styleOf(r.Style)
	style := lipgloss.NewStyle()
	if ps.fg != "" {
		style = style.Foreground(lipgloss.Color(ps.fg))
	}
	if ps.bg != "" {
		style = style.Background(lipgloss.Color(ps.bg))
	}
	return style.Render(r.Name)
}
