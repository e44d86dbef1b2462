package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/fraglight/internal/engine"
	"go.abhg.dev/fraglight/internal/iotest"
	"go.abhg.dev/fraglight/internal/session"
)

// sourceRenderer renders the snapshot's source text
// and records every snapshot it sees.
type sourceRenderer struct {
	mu    sync.Mutex
	seen  []string
	fails bool
}

var _ Renderer = (*sourceRenderer)(nil)

func (r *sourceRenderer) RenderPage(w io.Writer, snap *session.Snapshot) error {
	r.mu.Lock()
	r.seen = append(r.seen, snap.Source)
	r.mu.Unlock()

	if r.fails {
		return errors.New("great sadness")
	}
	_, err := io.WriteString(w, "<p>"+snap.Source+"</p>")
	return err
}

func (r *sourceRenderer) Seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

func newTestSession(t *testing.T, src string) *session.Session {
	t.Helper()

	eng := engine.Func(func(_ context.Context, req engine.Request) (engine.Result, error) {
		return engine.Result{HTML: req.Code}, nil
	})
	return session.New(context.Background(), session.Config{
		Engine: eng,
		Log:    iotest.Logger(t),
		Source: src,
	})
}

func TestGenerator_stdout(t *testing.T) {
	t.Parallel()

	for _, out := range []string{"", "-"} {
		t.Run("out="+out, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			gen := Generator{
				Log:      iotest.Logger(t),
				Renderer: new(sourceRenderer),
				Stdout:   &stdout,
				OutFile:  out,
			}

			snap := newTestSession(t, "fn main() {}").Snapshot()
			require.NoError(t, gen.Generate(&snap))
			assert.Equal(t, "<p>fn main() {}</p>", stdout.String())
		})
	}
}

func TestGenerator_file(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "site", "nested", "index.html")

	var stdout bytes.Buffer
	gen := Generator{
		Log:      iotest.Logger(t),
		Renderer: new(sourceRenderer),
		Stdout:   &stdout,
		OutFile:  out,
	}

	snap := newTestSession(t, "let x = 1;").Snapshot()
	require.NoError(t, gen.Generate(&snap))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>let x = 1;</p>", string(got))
	assert.Empty(t, stdout.String(), "nothing goes to stdout")
}

func TestGenerator_renderError(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "index.html")
	gen := Generator{
		Log:      iotest.Logger(t),
		Renderer: &sourceRenderer{fails: true},
		Stdout:   io.Discard,
		OutFile:  out,
	}

	snap := newTestSession(t, "x").Snapshot()
	err := gen.Generate(&snap)
	require.Error(t, err)
	assert.ErrorContains(t, err, "render: great sadness")

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist, "failed render must not create a file")
}

func TestGenerator_Regenerate(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := filepath.Join(t.TempDir(), "index.html")
	renderer := new(sourceRenderer)
	gen := Generator{
		Log:      iotest.Logger(t),
		Renderer: renderer,
		Stdout:   io.Discard,
		OutFile:  out,
	}

	sess := newTestSession(t, "a")
	changes := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- gen.Regenerate(ctx, sess, changes)
	}()

	changes <- "b"
	changes <- "c"
	close(changes)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Regenerate did not return after the channel closed")
	}

	assert.Equal(t, []string{"b", "c"}, renderer.Seen())
	assert.Equal(t, "c", sess.Source())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>c</p>", string(got))
}

func TestGenerator_RegenerateCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	gen := Generator{
		Log:      iotest.Logger(t),
		Renderer: &sourceRenderer{fails: true},
		Stdout:   io.Discard,
	}

	sess := newTestSession(t, "a")
	changes := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- gen.Regenerate(ctx, sess, changes)
	}()

	// A failed render is logged, not returned.
	changes <- "b"
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Regenerate did not return after cancellation")
	}
}
