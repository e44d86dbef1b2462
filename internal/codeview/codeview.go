// Package codeview renders auxiliary code blocks,
// such as the compiled stylesheet and engine requests,
// as highlighted HTML.
// It uses the Chroma library to do this work.
package codeview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlighter turns code into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = PlainStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Highlight renders src, written in the named language, into HTML.
// Unknown languages are rendered as plain text.
func (h *Highlighter) Highlight(lang, src string) string {
	h.init()

	var buf bytes.Buffer
	if h.UseClasses {
		fmt.Fprintf(&buf, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
	} else {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		fmt.Fprintf(&buf, "<pre style=%q>", style)
	}

	if err := h.format(&buf, lang, src); err != nil {
		// Tokenising failed part way.
		// Fall back to the escaped source.
		buf.Truncate(bytes.IndexByte(buf.Bytes(), '>') + 1)
		template.HTMLEscape(&buf, []byte(src))
	}

	buf.WriteString("</pre>")
	return buf.String()
}

func (h *Highlighter) format(w io.Writer, lang, src string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, h.Style, it)
}
