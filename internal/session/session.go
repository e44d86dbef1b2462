// Package session holds the state of one highlighting session:
// the source text, the highlight rules, the filters,
// and the most recent engine result.
//
// A Session recomputes only what a change invalidates.
// The stylesheet is recompiled when the rule list changes,
// and the engine is re-run when the source text
// or the set of active filters changes.
//
// A Session is not safe for concurrent use.
// Hosts serialize calls to it.
package session

import (
	"context"
	"io"
	"log"
	"slices"

	"go.abhg.dev/fraglight/internal/engine"
	"go.abhg.dev/fraglight/internal/filter"
	"go.abhg.dev/fraglight/internal/highlight"
	"go.abhg.dev/fraglight/internal/reorder"
	"go.abhg.dev/fraglight/internal/rulelist"
)

// StyleSink receives compiled stylesheets.
// *stylesheet.Target satisfies this interface.
type StyleSink interface {
	Install(css string)
}

// Config configures a new Session.
type Config struct {
	// Engine classifies source text. Required.
	Engine engine.Engine

	// Styles receives every newly compiled stylesheet.
	// Optional.
	Styles StyleSink

	// Log receives engine failures and recompute notices.
	// Defaults to discarding output.
	Log *log.Logger

	// Palette holds the default highlight rules.
	// Defaults to highlight.DefaultPalette.
	Palette *highlight.Palette

	// Dark selects the dark mode defaults.
	Dark bool

	// Source is the initial source text.
	Source string

	// Off names filters that start switched off.
	// Unknown names are ignored.
	Off []string
}

// Session is a single highlighting session.
type Session struct {
	eng   engine.Engine
	sink  StyleSink
	log   *log.Logger
	rules *highlight.Store
	filts *filter.Store

	source string

	// Inputs of the last compile and engine invocation.
	compiled  *rulelist.List[highlight.Rule]
	invoked   bool
	invSource string
	invNames  []string

	sheet  *highlight.Stylesheet
	result engine.Result
	err    error
}

// New builds a session, compiling the initial stylesheet
// and running the engine on the initial source.
func New(ctx context.Context, cfg Config) *Session {
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	palette := highlight.DefaultPalette()
	if cfg.Palette != nil {
		palette = *cfg.Palette
	}

	s := &Session{
		eng:    cfg.Engine,
		sink:   cfg.Styles,
		log:    logger,
		rules:  highlight.NewStore(palette, cfg.Dark),
		filts:  filter.NewStore(),
		source: cfg.Source,
	}
	for _, name := range cfg.Off {
		if f, ok := s.filts.List().Get(name); ok && f.Active {
			s.filts.Toggle(name)
		}
	}
	s.recompile()
	s.reinvoke(ctx)
	return s
}

// Rules returns the current highlight rule list.
func (s *Session) Rules() *rulelist.List[highlight.Rule] { return s.rules.List() }

// Filters returns the current filter list.
func (s *Session) Filters() *rulelist.List[filter.Filter] { return s.filts.List() }

// Source returns the current source text.
func (s *Session) Source() string { return s.source }

// SetSource replaces the source text.
func (s *Session) SetSource(ctx context.Context, src string) {
	s.source = src
	s.reinvoke(ctx)
}

// MoveRule changes the priority of a highlight rule.
func (s *Session) MoveRule(name string, target int) {
	s.rules.Move(name, target)
	s.recompile()
}

// ApplyRuleMove applies a move produced by a reorder gesture
// to the highlight rules.
func (s *Session) ApplyRuleMove(m reorder.Move) {
	s.MoveRule(m.ID, m.Target)
}

// ToggleRule switches a highlight rule on or off.
func (s *Session) ToggleRule(name string) {
	s.rules.Toggle(name)
	s.recompile()
}

// SetRuleStyle changes the color of a highlight rule.
func (s *Session) SetRuleStyle(name string, style highlight.Style) {
	s.rules.SetStyle(name, style)
	s.recompile()
}

// SetAllRules switches every highlight rule on or off.
func (s *Session) SetAllRules(target bool) {
	s.rules.SetAll(target)
	s.recompile()
}

// ResetRules restores the default highlight rules.
func (s *Session) ResetRules() {
	s.rules.Reset()
	s.recompile()
}

// SetDark switches display modes,
// replacing the highlight rules with that mode's defaults.
func (s *Session) SetDark(dark bool) {
	s.rules.SetDark(dark)
	s.recompile()
}

// MoveFilter changes the priority of a filter.
func (s *Session) MoveFilter(ctx context.Context, name string, target int) {
	s.filts.Move(name, target)
	s.reinvoke(ctx)
}

// ApplyFilterMove applies a move produced by a reorder gesture
// to the filters.
func (s *Session) ApplyFilterMove(ctx context.Context, m reorder.Move) {
	s.MoveFilter(ctx, m.ID, m.Target)
}

// ToggleFilter switches a filter on or off.
func (s *Session) ToggleFilter(ctx context.Context, name string) {
	s.filts.Toggle(name)
	s.reinvoke(ctx)
}

// SetAllFilters switches every filter on or off.
func (s *Session) SetAllFilters(ctx context.Context, active bool) {
	s.filts.SetAll(active)
	s.reinvoke(ctx)
}

// ResetFilters restores the default filters.
func (s *Session) ResetFilters(ctx context.Context) {
	s.filts.Reset()
	s.reinvoke(ctx)
}

func (s *Session) recompile() {
	list := s.rules.List()
	if s.sheet != nil && list == s.compiled {
		return
	}
	s.compiled = list
	s.sheet = highlight.Compile(list.Items())
	s.log.Printf("compiled stylesheet: %d layers", len(s.sheet.Layers()))
	if s.sink != nil {
		s.sink.Install(s.sheet.String())
	}
}

func (s *Session) reinvoke(ctx context.Context) {
	names := filter.ActiveNames(s.filts.List())
	if s.invoked && s.source == s.invSource && slices.Equal(names, s.invNames) {
		return
	}
	s.invoked = true
	s.invSource = s.source
	s.invNames = names

	res, err := s.eng.Invoke(ctx, engine.Request{Code: s.source, Filters: names})
	if err != nil {
		s.log.Printf("engine failed: %v", err)
		res = engine.Degenerate(err)
	}
	s.result, s.err = res, err
}
