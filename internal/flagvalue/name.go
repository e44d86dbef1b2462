package flagvalue

import (
	"flag"
	"fmt"

	"braces.dev/errtrace"
	"go.abhg.dev/fraglight/internal/highlight"
)

// Name is a highlight rule or filter name.
// It accepts the names [highlight.ValidName] accepts.
type Name string

var _ flag.Getter = (*Name)(nil)

// Get returns the name as a string.
func (n *Name) Get() any { return string(*n) }

// String returns the name.
func (n *Name) String() string { return string(*n) }

// Set validates and records a name.
func (n *Name) Set(s string) error {
	if !highlight.ValidName(s) {
		return errtrace.Wrap(fmt.Errorf("invalid name %q", s))
	}
	*n = Name(s)
	return nil
}
