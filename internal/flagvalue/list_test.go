package flagvalue

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc       string
		give       []string
		want       []Move
		wantString string
	}{
		{
			desc: "absent",
			give: []string{"-dark"},
		},
		{
			desc:       "separate",
			give:       []string{"-move", "expr=0"},
			want:       []Move{{Name: "expr", Index: 0}},
			wantString: "expr=0",
		},
		{
			desc:       "joint",
			give:       []string{"-move=item=3"},
			want:       []Move{{Name: "item", Index: 3}},
			wantString: "item=3",
		},
		{
			desc:       "interleaved",
			give:       []string{"-move", "expr=0", "-dark", "-move=ty=2"},
			want:       []Move{{Name: "expr", Index: 0}, {Name: "ty", Index: 2}},
			wantString: "expr=0; ty=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

			var got []Move
			list := ListOf(&got)
			fset.Var(list, "move", "")
			_ = fset.Bool("dark", false, "")
			require.NoError(t, fset.Parse(tt.give))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, list.Get(), "Get")
			assert.Equal(t, tt.wantString, list.String(), "String")
		})
	}
}

func TestList_strings(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

	var got []String
	fset.Var(ListOf(&got), "engine-arg", "")
	require.NoError(t, fset.Parse([]string{
		"-engine-arg", "--edition", "-engine-arg=2021", "-engine-arg", "",
	}))

	assert.Equal(t, []String{"--edition", "2021", ""}, got)
}

func TestList_error(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var got []Name
	fset.Var(ListOf(&got), "off", "")

	err := fset.Parse([]string{"-off=meta", "-off=not a name", "-off", "file"})
	assert.ErrorContains(t, err, `invalid name "not a name"`)
	assert.Equal(t, []Name{"meta"}, got, "parsing stops at the bad value")
}
