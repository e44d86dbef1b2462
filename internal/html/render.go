// Package html renders a highlighting session as an HTML page.
package html

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/fraglight/internal/codeview"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/engine"
	"go.abhg.dev/fraglight/internal/session"
	"go.abhg.dev/fraglight/internal/stylesheet"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/main.css
	_mainCSS string

	// Unusable function references at parse time,
	// and then Clone and replace at render time.
	// This way, template validity is still
	// verified at init.
	_pageTmpl = template.Must(
		template.New("page.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/page.html"),
	)
)

// Highlighter renders code blocks into HTML.
type Highlighter interface {
	Highlight(lang, src string) string
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*codeview.Highlighter)(nil)

// StyleWriter writes the live highlight style element.
type StyleWriter interface {
	WriteStyle(io.Writer) error
}

var _ StyleWriter = (*stylesheet.Target)(nil)

// Renderer renders session snapshots into HTML.
type Renderer struct {
	// Title of the generated page.
	// Defaults to "fraglight".
	Title string

	// Whether we're in embedded mode.
	// In this mode, output will only contain the page body
	// and will not generate a complete, stylized HTML page.
	// The live style element is still included.
	Embedded bool

	// Highlighter renders the stylesheet and engine request panels.
	// Defaults to a plain codeview.Highlighter.
	Highlighter Highlighter

	// Styles supplies the live style element.
	// If unset, a fresh one is compiled from the snapshot.
	Styles StyleWriter
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

// Page is the data rendered into a page.
type Page struct {
	Title string

	*session.Snapshot
}

// Request returns the engine request that produced the snapshot's result.
func (p *Page) Request() engine.Request {
	var names []string
	for _, f := range p.Filters {
		if f.Active {
			names = append(names, f.Name)
		}
	}
	return engine.Request{Code: p.Source, Filters: names}
}

// RenderPage renders a snapshot as HTML.
func (r *Renderer) RenderPage(w io.Writer, snap *session.Snapshot) error {
	title := r.Title
	if title == "" {
		title = "fraglight"
	}

	hl := r.Highlighter
	if hl == nil {
		hl = new(codeview.Highlighter)
	}

	styles := r.Styles
	if styles == nil {
		t := stylesheet.NewTarget()
		t.Install(snap.Stylesheet.String())
		styles = t
	}

	render := render{
		Embedded:    r.Embedded,
		Highlighter: hl,
		Styles:      styles,
	}
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), &Page{Title: title, Snapshot: snap}))
}

type render struct {
	Embedded    bool
	Highlighter Highlighter
	Styles      StyleWriter
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"code":      r.code,
		"markup":    r.markup,
		"mainCSS":   r.mainCSS,
		"liveStyle": r.liveStyle,
		"colorName": color.String,
		"toJSON":    r.toJSON,
		"embedded":  func() bool { return r.Embedded },
	}
}

func (r *render) code(lang, src string) template.HTML {
	return template.HTML(r.Highlighter.Highlight(lang, src))
}

// markup passes engine output through unescaped.
// The engine is trusted.
func (r *render) markup(s string) template.HTML {
	return template.HTML(s)
}

func (r *render) mainCSS() (template.CSS, error) {
	var sb strings.Builder
	sb.WriteString(_mainCSS)
	sb.WriteString("\n")
	if err := r.Highlighter.WriteCSS(&sb); err != nil {
		return "", errtrace.Wrap(err)
	}
	return template.CSS(sb.String()), nil
}

func (r *render) liveStyle() (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Styles.WriteStyle(&buf); err != nil {
		return "", errtrace.Wrap(err)
	}
	return template.HTML(buf.String()), nil
}

func (r *render) toJSON(v any) (string, error) {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(bs), nil
}
