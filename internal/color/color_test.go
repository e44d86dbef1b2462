package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cyan", String(Named{Name: "cyan"}))
	assert.Equal(t, "#123456", String(Custom{Hex: "#123456"}))
	assert.Equal(t, "not-a-color", String(Named{Name: "not-a-color"}),
		"names are not validated")
	assert.Empty(t, String(nil))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Color
	}{
		{"cyan", Named{Name: "cyan"}},
		{" violet ", Named{Name: "violet"}},
		{"#aa0000", Custom{Hex: "#aa0000"}},
		{"rgb(1, 2, 3)", Custom{Hex: "rgb(1, 2, 3)"}},
		{"HSL(0, 10%, 10%)", Custom{Hex: "HSL(0, 10%, 10%)"}},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Parse(tt.give))
		})
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc   string
		give   Color
		want   string
		wantOK bool
	}{
		{"palette", Named{Name: "lightcoral"}, "#f08080", true},
		{"palette case", Named{Name: "DarkBlue"}, "#00008b", true},
		{"readable", Named{Name: "black"}, "#000000", true},
		{"custom", Custom{Hex: "#aa0000"}, "#aa0000", true},
		{"unknown name", Named{Name: "rebeccapurple"}, "", false},
		{"empty custom", Custom{}, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, ok := Hex(tt.give)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPalette_unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for _, e := range Palette {
		_, dup := seen[e.Name]
		assert.False(t, dup, "duplicate palette entry %q", e.Name)
		seen[e.Name] = struct{}{}
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Color
		want Color
	}{
		{"first", Named{Name: "lightcoral"}, Named{Name: "orange"}},
		{"case", Named{Name: "Orange"}, Named{Name: "lime"}},
		{"last named", Named{Name: "darkblue"}, DefaultCustom},
		{"custom wraps", DefaultCustom, Named{Name: "lightcoral"}},
		{"other custom", Custom{Hex: "#123456"}, Named{Name: "lightcoral"}},
		{"unknown name", Named{Name: "rebeccapurple"}, Named{Name: "lightcoral"}},
		{"nil", nil, Named{Name: "lightcoral"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Next(tt.give))
		})
	}
}

func TestNext_cycle(t *testing.T) {
	t.Parallel()

	start := Color(Named{Name: Palette[0].Name})
	c := start
	for range len(Palette) + 1 {
		c = Next(c)
	}
	assert.Equal(t, start, c, "every palette entry and the custom color, then back")
}
