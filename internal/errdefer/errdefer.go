// Package errdefer runs deferred cleanup whose errors
// must not be lost.
//
// Use these inside a defer statement with a named error return.
package errdefer

import (
	"errors"
	"io"
)

// Close closes closer and joins its error into *err.
func Close(err *error, closer io.Closer) {
	Run(err, closer.Close)
}

// Run calls fn and joins its error into *err.
func Run(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
