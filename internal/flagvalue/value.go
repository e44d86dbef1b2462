// Package flagvalue provides flag.Value implementations.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// String is a plain string flag.Getter,
// for use with [ListOf] when a flag may repeat.
type String string

var _ flag.Getter = (*String)(nil)

// Get returns the string.
func (s *String) Get() any { return string(*s) }

// String returns the string.
func (s *String) String() string { return string(*s) }

// Set records the string.
func (s *String) Set(v string) error {
	*s = String(v)
	return nil
}
