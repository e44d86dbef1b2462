// Package tui runs a highlighting session in the terminal.
//
// The screen shows the highlighted engine output
// above two columns: highlight rules and filters.
// Items are reordered either by grabbing one with enter,
// moving the cursor to the drop position, and pressing enter again,
// or by stepping them with J and K.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/fraglight/internal/color"
	"go.abhg.dev/fraglight/internal/highlight"
	"go.abhg.dev/fraglight/internal/reorder"
	"go.abhg.dev/fraglight/internal/session"
)

type column int

const (
	rulesColumn column = iota
	filtersColumn
)

func (c column) String() string {
	if c == filtersColumn {
		return "Filter"
	}
	return "Highlight"
}

// SourceMsg replaces the session's source text.
// Send it to a running program when the source changes on disk.
type SourceMsg struct {
	Source string
}

var (
	_titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	_headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	_focusedHeaderStyle = _headerStyle.Underline(true)

	_dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	_errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	_columnBox  = lipgloss.NewStyle().PaddingRight(4)
)

// Model is the bubbletea model for a session.
type Model struct {
	ctx  context.Context
	sess *session.Session
	snap session.Snapshot

	keys keyMap
	help help.Model

	focus  column
	cursor [2]int

	drag       reorder.Gesture
	dragColumn column
}

var _ tea.Model = (*Model)(nil)

// New builds a model around an existing session.
// ctx is used for engine invocations.
func New(ctx context.Context, sess *session.Session) *Model {
	return &Model{
		ctx:  ctx,
		sess: sess,
		snap: sess.Snapshot(),
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case SourceMsg:
		m.sess.SetSource(m.ctx, msg.Source)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	m.snap = m.sess.Snapshot()
	m.clampCursors()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor[m.focus]--
		m.hover()

	case key.Matches(msg, m.keys.Down):
		m.cursor[m.focus]++
		m.clampCursors()
		m.hover()

	case key.Matches(msg, m.keys.Switch):
		m.drag.Cancel()
		m.focus = 1 - m.focus

	case key.Matches(msg, m.keys.Toggle):
		if id := m.current(); id != "" {
			if m.focus == rulesColumn {
				m.sess.ToggleRule(id)
			} else {
				m.sess.ToggleFilter(m.ctx, id)
			}
		}

	case key.Matches(msg, m.keys.Grab):
		if m.drag.Active() {
			m.drop()
		} else if id := m.current(); id != "" {
			m.drag.Begin(id)
			m.dragColumn = m.focus
		}

	case key.Matches(msg, m.keys.Cancel):
		m.drag.Cancel()

	case key.Matches(msg, m.keys.MoveUp):
		m.step(reorder.Up)

	case key.Matches(msg, m.keys.MoveDown):
		m.step(reorder.Down)

	case key.Matches(msg, m.keys.Color):
		m.restyle(func(st highlight.Style) highlight.Style {
			st.Color = color.Next(st.Color)
			return st
		})

	case key.Matches(msg, m.keys.Fill):
		m.restyle(func(st highlight.Style) highlight.Style {
			st.Background = !st.Background
			return st
		})

	case key.Matches(msg, m.keys.All):
		m.toggleAll()

	case key.Matches(msg, m.keys.Reset):
		m.drag.Cancel()
		if m.focus == rulesColumn {
			m.sess.ResetRules()
		} else {
			m.sess.ResetFilters(m.ctx)
		}

	case key.Matches(msg, m.keys.Dark):
		m.drag.Cancel()
		m.sess.SetDark(!m.snap.Dark)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// ids returns the item IDs of a column in display order.
func (m *Model) ids(c column) []string {
	if c == rulesColumn {
		return m.sess.Rules().Keys()
	}
	return m.sess.Filters().Keys()
}

func (m *Model) indexer(c column) reorder.Indexer {
	if c == rulesColumn {
		return m.sess.Rules()
	}
	return m.sess.Filters()
}

func (m *Model) current() string {
	ids := m.ids(m.focus)
	i := m.cursor[m.focus]
	if i < 0 || i >= len(ids) {
		return ""
	}
	return ids[i]
}

func (m *Model) clampCursors() {
	for _, c := range []column{rulesColumn, filtersColumn} {
		n := len(m.ids(c))
		m.cursor[c] = max(0, min(m.cursor[c], n-1))
	}
}

// hover tells an in-progress drag what's under the cursor.
func (m *Model) hover() {
	m.clampCursors()
	if m.drag.Active() {
		m.drag.Over(m.current())
	}
}

func (m *Model) drop() {
	mv, ok := m.drag.Release(m.indexer(m.dragColumn))
	if !ok {
		return
	}
	m.apply(m.dragColumn, mv)
}

func (m *Model) step(fn func(reorder.Indexer, string) (reorder.Move, bool)) {
	m.drag.Cancel()
	mv, ok := fn(m.indexer(m.focus), m.current())
	if !ok {
		return
	}
	m.apply(m.focus, mv)
}

// apply commits a move and keeps the cursor on the moved item.
func (m *Model) apply(c column, mv reorder.Move) {
	if c == rulesColumn {
		m.sess.ApplyRuleMove(mv)
	} else {
		m.sess.ApplyFilterMove(m.ctx, mv)
	}
	m.cursor[c] = mv.Target
}

// restyle edits the style of the highlight rule under the cursor.
// Filters have no style, so it does nothing in the filter column.
func (m *Model) restyle(edit func(highlight.Style) highlight.Style) {
	if m.focus != rulesColumn {
		return
	}
	r, ok := m.sess.Rules().Get(m.current())
	if !ok {
		return
	}
	m.sess.SetRuleStyle(r.Name, edit(r.Style))
}

func (m *Model) toggleAll() {
	if m.focus == rulesColumn {
		all := true
		for _, r := range m.snap.Rules {
			all = all && r.Target
		}
		m.sess.SetAllRules(!all)
		return
	}

	all := true
	for _, f := range m.snap.Filters {
		all = all && f.Active
	}
	m.sess.SetAllFilters(m.ctx, !all)
}

// View implements tea.Model.
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(_titleStyle.Render("fraglight"))
	sb.WriteString("\n")

	if m.snap.Err != nil {
		sb.WriteString(_errorStyle.Render("engine: " + m.snap.Err.Error()))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(paint(m.snap.Result.HTML, m.snap.Result.TopMatch, m.snap.Rules))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Whole Match: %s\n\n", m.snap.Result.TopMatch)

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		_columnBox.Render(m.rulesView()),
		_columnBox.Render(m.filtersView()),
	))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) header(c column) string {
	if m.focus == c {
		return _focusedHeaderStyle.Render(c.String())
	}
	return _headerStyle.Render(c.String())
}

// marker returns the gutter for an item:
// the cursor, and a drag indicator on the grabbed item.
func (m *Model) marker(c column, i int, id string) string {
	cursor := "  "
	if m.focus == c && m.cursor[c] == i {
		cursor = "> "
	}
	if m.drag.Active() && m.dragColumn == c && m.drag.Dragging() == id {
		cursor += "≡ "
	} else {
		cursor += "  "
	}
	return cursor
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m *Model) rulesView() string {
	lines := []string{m.header(rulesColumn)}
	for i, r := range m.snap.Rules {
		line := m.marker(rulesColumn, i, r.Name) + checkbox(r.Target) + " " + chip(r)
		if !r.Target {
			line = _dimStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) filtersView() string {
	lines := []string{m.header(filtersColumn)}
	for i, f := range m.snap.Filters {
		line := fmt.Sprintf("%s%s %-8s %s", m.marker(filtersColumn, i, f.Name), checkbox(f.Active), f.Name, f.Hit.Symbol())
		if !f.Active {
			line = _dimStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// NewProgram builds a terminal program for the session.
// The program stops when ctx is cancelled.
func NewProgram(ctx context.Context, sess *session.Session, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	return tea.NewProgram(New(ctx, sess), opts...)
}
