// Package engine talks to the fragment classification engine.
//
// The engine is opaque: given source text and the names of the active
// filters, it reports which fragment kind matches the whole input,
// every kind that matches some part of it, and the source annotated
// with one span per matched fragment.
package engine

import (
	"context"
	"html"

	"braces.dev/errtrace"
)

// Request is a single classification request.
type Request struct {
	// Code is the source text to classify.
	Code string `json:"code"`

	// Filters lists the names of the active filters, in priority order.
	Filters []string `json:"filters"`
}

// Result is the engine's answer to a Request.
type Result struct {
	// TopMatch is the fragment kind matching the entire input,
	// or empty if none does.
	TopMatch string

	// Matched lists every fragment kind that matched some part of
	// the input.
	Matched []string

	// HTML is the annotated markup.
	// It is trusted and rendered verbatim.
	HTML string
}

// Engine classifies source text.
type Engine interface {
	Invoke(ctx context.Context, req Request) (Result, error)
}

// Func adapts a plain function into an Engine.
type Func func(context.Context, Request) (Result, error)

var _ Engine = Func(nil)

// Invoke calls f.
func (f Func) Invoke(ctx context.Context, req Request) (Result, error) {
	res, err := f(ctx, req)
	return res, errtrace.Wrap(err)
}

// Degenerate is the result shown in place of a failed invocation:
// nothing matched, and the markup is the escaped error message.
func Degenerate(err error) Result {
	return Result{HTML: html.EscapeString(err.Error())}
}
