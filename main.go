package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"

	"braces.dev/errtrace"
	tea "github.com/charmbracelet/bubbletea"
	"go.abhg.dev/fraglight/internal/codeview"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/engine"
	"go.abhg.dev/fraglight/internal/errdefer"
	"go.abhg.dev/fraglight/internal/filter"
	"go.abhg.dev/fraglight/internal/flagvalue"
	"go.abhg.dev/fraglight/internal/highlight"
	"go.abhg.dev/fraglight/internal/html"
	"go.abhg.dev/fraglight/internal/rulefile"
	"go.abhg.dev/fraglight/internal/session"
	"go.abhg.dev/fraglight/internal/sliceutil"
	"go.abhg.dev/fraglight/internal/stylesheet"
	"go.abhg.dev/fraglight/internal/tui"
	"go.abhg.dev/fraglight/internal/watch"
	"golang.org/x/sync/errgroup"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	// Engine overrides the engine built from flags.
	// Used in tests.
	Engine engine.Engine

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("fraglight: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	debugW, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("-debug: %w", err))
	}
	defer errdefer.Run(&err, closeDebug)
	debugLog := log.New(debugW, "[debug] ", 0)

	palette := highlight.DefaultPalette()
	if opts.Rules != "" {
		palette, err = rulefile.Load(opts.Rules)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("-rules: %w", err))
		}
	}

	off := sliceutil.Transform(opts.Off, func(n flagvalue.Name) string { return string(n) })
	for _, name := range off {
		if !slices.Contains(filter.DefaultNames, name) {
			return errtrace.Wrap(fmt.Errorf("-off: unknown filter %q", name))
		}
	}

	src, err := cmd.readSource(opts.Source)
	if err != nil {
		return errtrace.Wrap(err)
	}

	eng := cmd.Engine
	if eng == nil {
		eng = &engine.CLI{
			Path: opts.Engine,
			Args: sliceutil.Transform(opts.EngineArgs, func(s flagvalue.String) string { return string(s) }),
			Log:  cmd.log,
		}
	}

	target := stylesheet.NewTarget()
	sess := session.New(ctx, session.Config{
		Engine:  eng,
		Styles:  target,
		Log:     debugLog,
		Palette: &palette,
		Dark:    opts.Dark,
		Source:  string(src),
		Off:     off,
	})
	if err := arrangeRules(sess, opts); err != nil {
		return errtrace.Wrap(err)
	}

	var watcher *watch.Watcher
	if opts.Watch {
		watcher, err = watch.New(opts.Source, debugLog)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("-watch: %w", err))
		}
		defer errdefer.Close(&err, watcher)
	}

	if opts.TUI {
		return errtrace.Wrap(cmd.runTUI(ctx, sess, watcher))
	}

	gen := Generator{
		Log: cmd.log,
		Renderer: &html.Renderer{
			Highlighter: new(codeview.Highlighter),
			Styles:      target,
		},
		Stdout:  cmd.Stdout,
		OutFile: opts.Out,
	}
	snap := sess.Snapshot()
	if err := gen.Generate(&snap); err != nil {
		return errtrace.Wrap(err)
	}
	if watcher == nil {
		return nil
	}

	changes := make(chan string)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(changes)
		return watcher.Run(ctx, func(bs []byte) error {
			select {
			case changes <- string(bs):
			case <-ctx.Done():
			}
			return nil
		})
	})
	g.Go(func() error {
		return gen.Regenerate(ctx, sess, changes)
	})
	return errtrace.Wrap(g.Wait())
}

func (cmd *mainCmd) readSource(path string) ([]byte, error) {
	if path == "-" {
		bs, err := io.ReadAll(cmd.Stdin)
		return bs, errtrace.Wrap(err)
	}
	bs, err := os.ReadFile(path)
	return bs, errtrace.Wrap(err)
}

// arrangeRules applies -color, -hide, and -move to the highlight rules.
func arrangeRules(sess *session.Session, opts *params) error {
	for _, p := range opts.Paint {
		if sess.Rules().Index(p.Name) < 0 {
			return errtrace.Wrap(fmt.Errorf("-color: unknown highlight rule %q", p.Name))
		}
		sess.SetRuleStyle(p.Name, highlight.Style{
			Color:      color.Parse(p.Color),
			Background: p.Background,
		})
	}

	for _, name := range opts.Hide {
		r, ok := sess.Rules().Get(string(name))
		if !ok {
			return errtrace.Wrap(fmt.Errorf("-hide: unknown highlight rule %q", name))
		}
		if r.Target {
			sess.ToggleRule(r.Name)
		}
	}

	for _, mv := range opts.Moves {
		if sess.Rules().Index(mv.Name) < 0 {
			return errtrace.Wrap(fmt.Errorf("-move: unknown highlight rule %q", mv.Name))
		}
		if n := sess.Rules().Len(); mv.Index >= n {
			return errtrace.Wrap(fmt.Errorf("-move %v: index out of range [0, %d)", mv.String(), n))
		}
		sess.MoveRule(mv.Name, mv.Index)
	}
	return nil
}

func (cmd *mainCmd) runTUI(ctx context.Context, sess *session.Session, watcher *watch.Watcher) error {
	tctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tui.NewProgram(tctx, sess,
		tea.WithInput(cmd.Stdin),
		tea.WithOutput(cmd.Stdout),
		tea.WithAltScreen(),
	)

	var g errgroup.Group
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(tctx, func(bs []byte) error {
				prog.Send(tui.SourceMsg{Source: string(bs)})
				return nil
			})
		})
	}

	_, err := prog.Run()
	cancel()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil // interrupted by the user
	}
	return errtrace.Wrap(errors.Join(err, g.Wait()))
}
