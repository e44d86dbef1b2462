// Package sliceutil holds generic slice helpers
// that never modify their inputs.
package sliceutil
