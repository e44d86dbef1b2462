package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/fraglight/internal/errdefer"
	"go.abhg.dev/fraglight/internal/html"
	"go.abhg.dev/fraglight/internal/session"
)

// Renderer renders a session snapshot to HTML.
type Renderer interface {
	RenderPage(io.Writer, *session.Snapshot) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator writes HTML pages for a session.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Renderer Renderer

	// Stdout receives the page if OutFile is "-" or empty.
	Stdout io.Writer

	// OutFile is the path to write the page to.
	OutFile string
}

// Generate renders the snapshot and writes it out.
//
// The page is rendered in full before anything is written
// so that a failed render never leaves a partial page behind.
func (g *Generator) Generate(snap *session.Snapshot) (err error) {
	var buf bytes.Buffer
	if err := g.Renderer.RenderPage(&buf, snap); err != nil {
		return errtrace.Wrap(fmt.Errorf("render: %w", err))
	}

	if g.OutFile == "" || g.OutFile == "-" {
		_, err := buf.WriteTo(g.Stdout)
		return errtrace.Wrap(err)
	}

	if dir := filepath.Dir(g.OutFile); dir != "." {
		if err := os.MkdirAll(dir, 0o1755); err != nil {
			return errtrace.Wrap(err)
		}
	}

	f, err := os.Create(g.OutFile)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	if _, err := buf.WriteTo(f); err != nil {
		return errtrace.Wrap(err)
	}

	g.Log.Printf("Wrote %v", g.OutFile)
	return nil
}

// Regenerate re-renders the page every time the source changes,
// until ctx is cancelled.
//
// A failed render is logged and does not stop regeneration.
func (g *Generator) Regenerate(ctx context.Context, sess *session.Session, changes <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case src, ok := <-changes:
			if !ok {
				return nil
			}

			sess.SetSource(ctx, src)
			snap := sess.Snapshot()
			if err := g.Generate(&snap); err != nil {
				g.Log.Printf("fraglight: %v", err)
			}
		}
	}
}
