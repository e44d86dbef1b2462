// Package stylesheet holds the live highlight stylesheet of a page.
//
// A page carries exactly one style element with the ID "highlight-style".
// Installing a new stylesheet replaces that element atomically:
// concurrent readers see either the old stylesheet or the new one,
// never both and never neither.
package stylesheet

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"braces.dev/errtrace"
	"github.com/andybalholm/cascadia"
	"go.abhg.dev/fraglight/internal/must"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ID is the element ID of the live style element.
const ID = "highlight-style"

var (
	_styleSel = cascadia.MustCompile("style#" + ID)
	_headSel  = cascadia.MustCompile("head")
)

const _emptyPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Target is an HTML document that receives highlight stylesheets.
//
// A Target is safe for concurrent use.
type Target struct {
	mu  sync.Mutex
	doc *html.Node
}

// NewTarget builds a Target around an empty HTML document.
func NewTarget() *Target {
	t, err := Parse(strings.NewReader(_emptyPage))
	must.NotErrorf(err, "parse empty page")
	return t
}

// Parse builds a Target from an existing HTML page.
// Any style elements already using ID in the page are left alone
// until the first Install.
func Parse(r io.Reader) (*Target, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Target{doc: doc}, nil
}

// Install replaces the live style element with one holding css.
func (t *Target) Install(css string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, n := range cascadia.QueryAll(t.doc, _styleSel) {
		n.Parent.RemoveChild(n)
	}

	head := cascadia.Query(t.doc, _headSel)
	if head == nil {
		// html.Parse always synthesizes a head,
		// but a hand-built tree may not have one.
		head = &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		t.doc.AppendChild(head)
	}

	style := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "id", Val: ID}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	head.AppendChild(style)
}

// CSS returns the text of the live style element,
// or an empty string if none is installed.
func (t *Target) CSS() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := cascadia.Query(t.doc, _styleSel)
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Count reports the number of live style elements in the document.
func (t *Target) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(cascadia.QueryAll(t.doc, _styleSel))
}

// WriteStyle renders only the live style element to w.
// Nothing is written if none is installed.
func (t *Target) WriteStyle(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := cascadia.Query(t.doc, _styleSel)
	if n == nil {
		return nil
	}
	return errtrace.Wrap(html.Render(w, n))
}

// Render renders the full document to w.
func (t *Target) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := t.render(&buf); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := buf.WriteTo(w)
	return errtrace.Wrap(err)
}

// render holds the lock only while serializing into memory,
// not while writing to a possibly slow destination.
func (t *Target) render(buf *bytes.Buffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return errtrace.Wrap(html.Render(buf, t.doc))
}
