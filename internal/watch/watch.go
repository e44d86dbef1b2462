// Package watch reports changes to the contents of a single file.
package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a file for changes to its contents.
//
// The file's parent directory is watched rather than the file itself
// so that editors replacing the file with a rename are noticed.
type Watcher struct {
	path string
	log  *log.Logger
	fsw  *fsnotify.Watcher

	last []byte // contents last reported or read at startup
}

// New starts watching the file at path.
// The file must exist.
// Call Close to release the watcher.
func New(path string, logger *log.Logger) (_ *Watcher, err error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	last, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("create file watcher: %w", err))
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return nil, errtrace.Wrap(errors.Join(err, fsw.Close()))
	}

	return &Watcher{
		path: path,
		log:  logger,
		fsw:  fsw,
		last: last,
	}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return errtrace.Wrap(w.fsw.Close())
}

// Run calls onChange with the new contents of the file
// every time they change,
// until ctx is cancelled or onChange fails.
//
// Events that leave the contents unchanged are ignored.
// If the file temporarily disappears, Run keeps waiting for it.
func (w *Watcher) Run(ctx context.Context, onChange func([]byte) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return errtrace.Wrap(errors.New("watcher events channel closed"))
			}
			if !w.relevant(ev) {
				continue
			}

			bs, err := os.ReadFile(w.path)
			if err != nil {
				w.log.Printf("watch: %v", err)
				continue
			}
			if bytes.Equal(bs, w.last) {
				continue
			}
			w.last = bs

			w.log.Printf("watch: %v changed", w.path)
			if err := onChange(bs); err != nil {
				return errtrace.Wrap(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errtrace.Wrap(errors.New("watcher errors channel closed"))
			}
			w.log.Printf("watch: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
