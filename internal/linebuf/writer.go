// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"log"
	"sync"
)

// Writer returns an io.Writer that splits its input on newline,
// calling fn for each line, including the trailing newline.
//
// Call done to flush a trailing partial line.
func Writer(fn func([]byte)) (_ io.Writer, done func()) {
	w := writer{writeLine: fn}
	return &w, w.flush
}

// Log returns an io.Writer that prints each line written to it
// as a separate log entry with the given prefix.
// Trailing newlines are dropped; the logger adds its own.
func Log(logger *log.Logger, prefix string) (_ io.Writer, done func()) {
	return Writer(func(line []byte) {
		logger.Printf("%s%s", prefix, bytes.TrimSuffix(line, []byte{'\n'}))
	})
}

type writer struct {
	writeLine func([]byte)

	mu   sync.Mutex   // guards buff and writeLine calls
	buff bytes.Buffer // partial line from prior writes
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx+1], bs[idx+1:]

		if w.buff.Len() == 0 {
			w.writeLine(line)
			continue
		}

		// Complete the line started by an earlier write.
		w.buff.Write(line)
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
	return total, nil
}

func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.writeLine(w.buff.Bytes())
		w.buff.Reset()
	}
}
