package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/fraglight/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for fraglight.
type params struct {
	version bool
	help    Help

	Debug  flagvalue.FileSwitch
	Config string

	Engine     string
	EngineArgs []flagvalue.String

	Dark  bool
	Rules string
	Off   []flagvalue.Name
	Hide  []flagvalue.Name
	Moves []flagvalue.Move
	Paint []flagvalue.Paint

	Out   string
	Watch bool
	TUI   bool

	// Source is the path to the source file,
	// or "-" to read from stdin.
	Source string
}

// cliParser parses the command line arguments for fraglight.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("fraglight", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Engine:
	flag.StringVar(&p.Engine, "engine", "", "")
	flag.Var(flagvalue.ListOf(&p.EngineArgs), "engine-arg", "")

	// Rules and filters:
	flag.BoolVar(&p.Dark, "dark", false, "")
	flag.StringVar(&p.Rules, "rules", "", "")
	flag.Var(flagvalue.ListOf(&p.Off), "off", "")
	flag.Var(flagvalue.ListOf(&p.Hide), "hide", "")
	flag.Var(flagvalue.ListOf(&p.Moves), "move", "")
	flag.Var(flagvalue.ListOf(&p.Paint), "color", "")

	// Output:
	flag.StringVar(&p.Out, "out", "-", "")
	flag.BoolVar(&p.Watch, "watch", false, "")
	flag.BoolVar(&p.TUI, "tui", false, "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix("FRAGLIGHT"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			// flag reports its own errors but not config file errors.
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "fraglight", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		p.Source = "-"
	case 1:
		p.Source = args[0]
	default:
		fmt.Fprintln(cmd.Stderr, "Please provide at most one source file.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Source == "-" && (p.Watch || p.TUI) {
		fmt.Fprintln(cmd.Stderr, "-watch and -tui need a source file; stdin can't be watched or shared with the terminal.")
		return nil, errInvalidArguments
	}
	if p.Watch && !p.TUI && p.Out == "-" {
		fmt.Fprintln(cmd.Stderr, "-watch needs -out to name a file.")
		return nil, errInvalidArguments
	}

	return p, nil
}
