package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List accepts a flag any number of times,
// collecting each occurrence in order.
//
// fraglight uses it for -engine-arg, -off, -hide, and -move.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice so that every occurrence
// of the flag appends one parsed element to it.
//
//	flag.Var(flagvalue.ListOf(&moves), "move", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the collected values.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the elements' own string forms with "; ".
func (lv *List[T, PT]) String() string {
	parts := make([]string, len(*lv))
	for i := range *lv {
		parts[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(parts, "; ")
}

// Set parses s as one element and appends it.
// Nothing is appended if parsing fails.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
