// Package iotest provides IO helpers for tests.
package iotest

import (
	"io"
	"log"
	"testing"

	"go.abhg.dev/fraglight/internal/linebuf"
)

// Writer builds an io.Writer that writes to the given testing.TB,
// one log entry per line.
// Partial lines are flushed when the test ends.
func Writer(t testing.TB) io.Writer {
	w, done := linebuf.Writer(func(line []byte) {
		t.Logf("%s", trimNewline(line))
	})
	t.Cleanup(done)
	return w
}

// Logger builds a *log.Logger that writes to the given testing.TB.
func Logger(t testing.TB) *log.Logger {
	return log.New(Writer(t), "", 0)
}

func trimNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		return b[:n-1]
	}
	return b
}
