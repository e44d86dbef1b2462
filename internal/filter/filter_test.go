package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		name    string
		top     string
		matched []string
		want    Hit
	}{
		{
			desc:    "top",
			name:    "expr",
			top:     "expr",
			matched: []string{"expr", "stmt"},
			want:    Top,
		},
		{
			desc: "top without matched set",
			name: "expr",
			top:  "expr",
			want: Top,
		},
		{
			desc:    "matched",
			name:    "stmt",
			top:     "expr",
			matched: []string{"expr", "stmt"},
			want:    Matched,
		},
		{
			desc:    "unmatched",
			name:    "item",
			top:     "expr",
			matched: []string{"expr", "stmt"},
			want:    Unmatched,
		},
		{
			desc: "empty top never matches",
			name: "",
			top:  "",
			want: Unmatched,
		},
		{
			desc:    "empty top with empty name in matched set",
			name:    "",
			top:     "",
			matched: []string{""},
			want:    Matched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, HitStatus(tt.name, tt.top, tt.matched))
		})
	}
}

func TestHit_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "unmatched", Unmatched.String())
	assert.Equal(t, "unknown", Hit(42).String())
}

func TestHit_Symbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "◉", Top.Symbol())
	assert.Equal(t, "✓", Matched.Symbol())
	assert.Empty(t, Unmatched.Symbol())
	assert.Empty(t, Hit(42).Symbol())
}

func TestClassify_defaults(t *testing.T) {
	t.Parallel()

	s := NewStore()
	require.Equal(t, 12, s.List().Len())

	statuses := Classify(s.List(), "expr", []string{"expr", "stmt"})
	got := make(map[string]Hit, len(statuses))
	for _, st := range statuses {
		got[st.Name] = st.Hit
	}

	assert.Equal(t, Top, got["expr"])
	assert.Equal(t, Matched, got["stmt"])
	assert.Equal(t, Unmatched, got["item"])
	assert.Len(t, statuses, 12)
}

func TestActiveNames(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.Equal(t, DefaultNames, ActiveNames(s.List()))

	s.Toggle("block")
	s.Move("meta", 0)
	assert.Equal(t, []string{
		"meta", "file", "item", "stmt", "expr", "ty",
		"path", "vis", "ident", "lifetime", "literal",
	}, ActiveNames(s.List()))

	s.SetAll(false)
	assert.Empty(t, ActiveNames(s.List()))
}

func TestStore_Reset(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Move("file", 11)
	s.Move("literal", 0)
	s.Toggle("expr")
	s.Toggle("ty")
	s.Reset()

	assert.Equal(t, Defaults(), s.List().Items())
	assert.Equal(t, []string{
		"file", "item", "block", "stmt", "expr", "ty",
		"path", "vis", "ident", "lifetime", "literal", "meta",
	}, s.List().Keys())
}

func TestStore_invalidMove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	before := s.List()
	for _, idx := range []int{-1, 12, 100} {
		s.Move("literal", idx)
		assert.Same(t, before, s.List())
		assert.Equal(t, Defaults(), s.List().Items())
	}
}
