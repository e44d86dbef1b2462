package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/highlight"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	fg := func(name, c string) highlight.Rule {
		return highlight.Rule{Name: name, Target: true, Style: highlight.Style{Color: color.Named{Name: c}}}
	}
	bg := func(name, c string) highlight.Rule {
		r := fg(name, c)
		r.Style.Background = true
		return r
	}
	off := func(r highlight.Rule) highlight.Rule {
		r.Target = false
		return r
	}

	tests := []struct {
		desc  string
		give  string
		root  string
		rules []highlight.Rule
		want  []segment
	}{
		{
			desc: "plain text",
			give: "a &lt; b",
			want: []segment{{Text: "a < b"}},
		},
		{
			desc:  "foreground",
			give:  `<span class="ident">a</span> + 1`,
			rules: []highlight.Rule{fg("ident", "orange")},
			want: []segment{
				{Text: "a", FG: "#ffa500"},
				{Text: " + 1"},
			},
		},
		{
			desc:  "background uses readable text",
			give:  `<span class="literal">1</span>`,
			rules: []highlight.Rule{bg("literal", "lightcoral")},
			want:  []segment{{Text: "1", FG: "#000000", BG: "#f08080"}},
		},
		{
			desc:  "earlier rule wins on the same element",
			give:  `<span class="expr ident">a</span>`,
			rules: []highlight.Rule{fg("ident", "orange"), fg("expr", "cyan")},
			want:  []segment{{Text: "a", FG: "#ffa500"}},
		},
		{
			desc:  "inactive rules are skipped",
			give:  `<span class="expr ident">a</span>`,
			rules: []highlight.Rule{off(fg("ident", "orange")), fg("expr", "cyan")},
			want:  []segment{{Text: "a", FG: "#00ffff"}},
		},
		{
			desc:  "ancestor background shows through",
			give:  `<span class="expr"><span class="ident">a</span> + b</span>`,
			rules: []highlight.Rule{fg("ident", "orange"), bg("expr", "cyan")},
			want: []segment{
				{Text: "a", FG: "#ffa500", BG: "#00ffff"},
				{Text: " + b", FG: "#000000", BG: "#00ffff"},
			},
		},
		{
			desc:  "inner element without rules inherits color",
			give:  `<span class="item"><span class="kw">fn</span></span>`,
			rules: []highlight.Rule{fg("item", "darkblue")},
			want:  []segment{{Text: "fn", FG: "#00008b"}},
		},
		{
			desc:  "root class",
			give:  `a`,
			root:  "expr",
			rules: []highlight.Rule{fg("expr", "cyan")},
			want:  []segment{{Text: "a", FG: "#00ffff"}},
		},
		{
			desc:  "custom color",
			give:  `<span class="ty">T</span>`,
			rules: []highlight.Rule{{Name: "ty", Target: true, Style: highlight.Style{Color: color.Custom{Hex: "#aa0000"}}}},
			want:  []segment{{Text: "T", FG: "#aa0000"}},
		},
		{
			desc:  "void elements",
			give:  `<span class="ident">a<br>b</span>c`,
			rules: []highlight.Rule{fg("ident", "orange")},
			want: []segment{
				{Text: "a", FG: "#ffa500"},
				{Text: "b", FG: "#ffa500"},
				{Text: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, segments(tt.give, tt.root, tt.rules))
		})
	}
}

func TestPaint_keepsText(t *testing.T) {
	t.Parallel()

	got := paint(
		"<span class=\"block\">{\n  <span class=\"ident\">x</span>\n}</span>",
		"",
		highlight.Defaults(false),
	)
	assert.Contains(t, got, "x")
	assert.Contains(t, got, "\n")
}
