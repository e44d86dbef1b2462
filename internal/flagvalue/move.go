package flagvalue

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Move is a flag value of the form NAME=INDEX
// requesting that the item NAME be moved to position INDEX.
// Use with [ListOf] to accept the flag more than once.
type Move struct {
	Name  string
	Index int
}

var _ flag.Getter = (*Move)(nil)

// Get returns the Move.
func (m *Move) Get() any { return *m }

// String returns the move in NAME=INDEX form,
// or an empty string for the zero value.
func (m *Move) String() string {
	if m.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s=%d", m.Name, m.Index)
}

// Set parses a NAME=INDEX pair.
func (m *Move) Set(s string) error {
	name, idx, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.Wrap(fmt.Errorf("expected NAME=INDEX, got %q", s))
	}

	var n Name
	if err := n.Set(name); err != nil {
		return errtrace.Wrap(err)
	}

	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("bad index %q: %w", idx, err))
	}
	if i < 0 {
		return errtrace.Wrap(errors.New("index must not be negative"))
	}

	*m = Move{Name: string(n), Index: i}
	return nil
}
