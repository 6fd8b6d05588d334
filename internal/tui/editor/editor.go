// Package editor provides a markdown editor component for bubbletea. The
// buffer is plain text; each change rebuilds a decoration set that the view
// applies per line, so markup near the cursor stays raw while the rest of
// the document renders styled.
package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/livemark/internal/decor"
)

// Model is a decoration-driven markdown editor component.
type Model struct {
	// Public configuration — set before first Update/View.
	ReadOnly        bool
	ShowLineNumbers bool
	Placeholder     string // Shown when empty and blurred

	// Styles — set by parent.
	LineNumStyle   lipgloss.Style
	PlaceholderSty lipgloss.Style

	theme    Theme
	decorate decor.BuildFunc

	// Internal state
	lines  [][]rune // Backing store, one entry per line
	row    int      // Cursor row (0-indexed into lines)
	col    int      // Cursor column (0-indexed into line runes)
	scroll int      // First visible row

	width  int
	height int

	focus  bool
	cursor cursor.Model

	// Mouse selection
	selecting   bool
	selectStart pos
	selectEnd   pos

	// Decoration state, rebuilt by refresh after every mutation or move.
	doc      *decor.Document
	decos    decor.Set
	langs    map[int]string // fence language per body line number
	rendered []renderedLine // one per buffer row

	gutterWidth int
}

type pos struct{ row, col int }

// New creates an editor with the given theme and decoration builder.
func New(th Theme, build decor.BuildFunc) Model {
	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	m := Model{
		theme:    th,
		decorate: build,
		lines:    [][]rune{{}},
		cursor:   c,
	}
	m.refresh()
	return m
}

// ---------------------------------------------------------------------------
// Public methods called by parent
// ---------------------------------------------------------------------------

func (m *Model) SetWidth(w int)  { m.width = w; m.clampScroll() }
func (m *Model) SetHeight(h int) { m.height = h; m.clampScroll() }

func (m *Model) Focus() {
	m.focus = true
	m.cursor.Focus()
}

func (m *Model) Blur() {
	m.focus = false
	m.cursor.Blur()
}

func (m Model) Focused() bool { return m.focus }

func (m *Model) SetValue(s string) {
	raw := strings.Split(s, "\n")
	m.lines = make([][]rune, len(raw))
	for i, l := range raw {
		m.lines[i] = []rune(expandTabs(l))
	}
	if len(m.lines) == 0 {
		m.lines = [][]rune{{}}
	}
	m.row = 0
	m.col = 0
	m.scroll = 0
	m.refresh()
}

func (m Model) Value() string {
	var sb strings.Builder
	for i, line := range m.lines {
		sb.WriteString(string(line))
		if i < len(m.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *Model) Reset() {
	m.lines = [][]rune{{}}
	m.row = 0
	m.col = 0
	m.scroll = 0
	m.refresh()
}

// InsertText inserts a multi-line string at the current cursor position.
// Newlines split lines; carriage returns are dropped. No-op if ReadOnly.
func (m *Model) InsertText(text string) {
	if m.ReadOnly {
		return
	}
	for _, r := range expandTabs(text) {
		switch r {
		case '\n':
			m.insertNewline()
		case '\r':
		default:
			m.insertRune(r)
		}
	}
	m.clampScroll()
	m.refresh()
}

// CursorPos returns the 1-indexed cursor row and column for status display.
func (m Model) CursorPos() (row, col int) { return m.row + 1, m.col + 1 }

// Blink returns the initial cursor blink message. Call from Init().
func Blink() tea.Msg { return cursor.Blink() }

// ---------------------------------------------------------------------------
// Decoration refresh
// ---------------------------------------------------------------------------

// refresh rebuilds the document snapshot, decoration set, fence language
// table, and per-line renders. Called after every edit, cursor move, or
// selection change.
func (m *Model) refresh() {
	m.doc = decor.NewDocument(m.Value())
	m.decos = m.decorate(m.doc, m.selections())
	m.langs = fenceLanguages(m.doc, m.decos)
	m.rendered = make([]renderedLine, len(m.lines))
	for i := range m.lines {
		num := i + 1
		m.rendered[i] = renderLine(m.doc, num, m.decos, m.theme, m.langs[num])
	}
}

// selections converts the editor cursor and any active mouse selection to
// byte ranges over the current document.
func (m *Model) selections() []decor.Selection {
	if m.hasSelection() {
		s, e := m.selectionOrdered()
		return []decor.Selection{{From: m.byteOffset(s), To: m.byteOffset(e)}}
	}
	return []decor.Selection{decor.Caret(m.byteOffset(pos{m.row, m.col}))}
}

// byteOffset converts a buffer row,col to an absolute byte offset.
func (m *Model) byteOffset(p pos) int {
	ln := m.doc.Line(p.row + 1)
	c := clampMax(p.col, len(m.lines[p.row]))
	return ln.Start + len(string(m.lines[p.row][:c]))
}

// fenceLanguages maps fenced body line numbers to the language named on
// their opening fence.
func fenceLanguages(doc *decor.Document, set decor.Set) map[int]string {
	langs := make(map[int]string)
	lang := ""
	for _, d := range set.Decorations() {
		if d.Kind != decor.LineTag {
			continue
		}
		switch d.Role {
		case decor.RoleCodeFirst:
			lang = decor.FenceLanguage(doc.LineAt(d.From).Text)
		case decor.RoleCodeMiddle:
			langs[doc.LineAt(d.From).Num] = lang
		}
	}
	return langs
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func (m *Model) currentLine() []rune { return m.lines[m.row] }

func (m *Model) clampCursor() {
	if m.row < 0 {
		m.row = 0
	}
	if m.row >= len(m.lines) {
		m.row = len(m.lines) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	if m.col > len(m.currentLine()) {
		m.col = len(m.currentLine())
	}
}

func (m *Model) clampScroll() {
	if m.height <= 0 {
		return
	}
	// Ensure cursor is visible
	if m.row < m.scroll {
		m.scroll = m.row
	}
	if m.row >= m.scroll+m.height {
		m.scroll = m.row - m.height + 1
	}
	// Don't scroll past content
	maxScroll := len(m.lines) - m.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

const tabWidth = 4

// expandTabs replaces tabs with spaces (tabWidth-aligned). The buffer never
// holds tabs so byte offsets and screen columns stay in step.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// textWidth returns the width available for text content.
func (m *Model) textWidth() int {
	m.gutterWidth = 0
	if m.ShowLineNumbers {
		digits := len(fmt.Sprintf("%d", len(m.lines)))
		if digits < 2 {
			digits = 2
		}
		m.gutterWidth = digits + 1 // digits + 1 space
	}
	w := m.width - m.gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

// ---------------------------------------------------------------------------
// Editing operations
// ---------------------------------------------------------------------------

func (m *Model) insertRune(r rune) {
	if m.ReadOnly {
		return
	}
	line := m.currentLine()
	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:m.col]...)
	newLine = append(newLine, r)
	newLine = append(newLine, line[m.col:]...)
	m.lines[m.row] = newLine
	m.col++
}

func (m *Model) insertNewline() {
	if m.ReadOnly {
		return
	}
	line := m.currentLine()
	after := make([]rune, len(line[m.col:]))
	copy(after, line[m.col:])
	m.lines[m.row] = line[:m.col]
	newLines := make([][]rune, 0, len(m.lines)+1)
	newLines = append(newLines, m.lines[:m.row+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, m.lines[m.row+1:]...)
	m.lines = newLines
	m.row++
	m.col = 0
}

func (m *Model) deleteBack() {
	if m.ReadOnly {
		return
	}
	if m.col > 0 {
		line := m.currentLine()
		m.lines[m.row] = append(line[:m.col-1], line[m.col:]...)
		m.col--
	} else if m.row > 0 {
		// Merge with previous line
		prev := m.lines[m.row-1]
		m.col = len(prev)
		m.lines[m.row-1] = append(prev, m.currentLine()...)
		m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
		m.row--
	}
}

func (m *Model) deleteForward() {
	if m.ReadOnly {
		return
	}
	line := m.currentLine()
	if m.col < len(line) {
		m.lines[m.row] = append(line[:m.col], line[m.col+1:]...)
	} else if m.row < len(m.lines)-1 {
		// Merge with next line
		m.lines[m.row] = append(line, m.lines[m.row+1]...)
		m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
	}
}

// tabIndent inserts a two-space list nesting step.
func (m *Model) tabIndent() {
	if m.ReadOnly {
		return
	}
	m.insertRune(' ')
	m.insertRune(' ')
}

// ---------------------------------------------------------------------------
// Selection helpers
// ---------------------------------------------------------------------------

func (m *Model) selectionOrdered() (start, end pos) {
	s, e := m.selectStart, m.selectEnd
	if s.row > e.row || (s.row == e.row && s.col > e.col) {
		s, e = e, s
	}
	return s, e
}

func (m *Model) hasSelection() bool {
	return m.selectStart != m.selectEnd
}

func (m *Model) clearSelection() {
	m.selecting = false
	m.selectStart = pos{}
	m.selectEnd = pos{}
}

func (m *Model) selectedText() string {
	if !m.hasSelection() {
		return ""
	}
	s, e := m.selectionOrdered()
	if s.row == e.row {
		line := m.lines[s.row]
		sc := clampMax(s.col, len(line))
		ec := clampMax(e.col, len(line))
		return string(line[sc:ec])
	}
	var sb strings.Builder
	// First line from s.col to end
	first := m.lines[s.row]
	sb.WriteString(string(first[clampMax(s.col, len(first)):]))
	// Middle lines in full
	for r := s.row + 1; r < e.row; r++ {
		sb.WriteByte('\n')
		sb.WriteString(string(m.lines[r]))
	}
	// Last line from start to e.col
	sb.WriteByte('\n')
	last := m.lines[e.row]
	sb.WriteString(string(last[:clampMax(e.col, len(last))]))
	return sb.String()
}

// screenToPos converts screen-relative x,y to a buffer row,col. The x
// coordinate is a visual column; hidden and replaced spans on the row are
// undone through the rendered line's piece table.
func (m *Model) screenToPos(x, y int) pos {
	row := m.scroll + y
	if row < 0 {
		row = 0
	}
	if row >= len(m.lines) {
		row = len(m.lines) - 1
	}
	vcol := x - m.gutterWidth
	if vcol < 0 {
		vcol = 0
	}
	col := len(m.lines[row])
	if row < len(m.rendered) {
		ln := m.doc.Line(row + 1)
		off := m.rendered[row].sourceOffset(vcol, ln)
		col = utf8.RuneCountInString(ln.Text[:off-ln.Start])
	}
	if col > len(m.lines[row]) {
		col = len(m.lines[row])
	}
	return pos{row: row, col: col}
}

func clampMax(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		moved := true
		switch msg.String() {
		// Navigation
		case "up":
			m.row--
			m.clampCursor()
		case "down":
			m.row++
			m.clampCursor()
		case "left":
			if m.col > 0 {
				m.col--
			} else if m.row > 0 {
				m.row--
				m.col = len(m.currentLine())
			}
		case "right":
			if m.col < len(m.currentLine()) {
				m.col++
			} else if m.row < len(m.lines)-1 {
				m.row++
				m.col = 0
			}
		case "home", "ctrl+a":
			m.col = 0
		case "end", "ctrl+e":
			m.col = len(m.currentLine())
		case "pgup":
			m.row -= m.height
			m.clampCursor()
		case "pgdown":
			m.row += m.height
			m.clampCursor()
		case "ctrl+home":
			m.row = 0
			m.col = 0
		case "ctrl+end":
			m.row = len(m.lines) - 1
			m.col = len(m.currentLine())

		// Editing
		case "backspace", "ctrl+h":
			m.deleteBack()
		case "delete", "ctrl+d":
			m.deleteForward()
		case "enter":
			m.insertNewline()
		case "tab":
			m.tabIndent()

		// Clipboard
		case "ctrl+v":
			if !m.ReadOnly {
				if text, err := clipboard.ReadAll(); err == nil {
					for _, r := range expandTabs(text) {
						if r == '\n' {
							m.insertNewline()
						} else {
							m.insertRune(r)
						}
					}
				}
			}

		default:
			moved = false
			// Insert printable runes
			if !m.ReadOnly && len(msg.Runes) > 0 {
				for _, r := range msg.Runes {
					m.insertRune(r)
				}
				moved = true
			}
		}

		if moved {
			m.clampCursor()
			m.clampScroll()
			m.refresh()
			m.cursor.Blink = false
			cmds = append(cmds, m.cursor.BlinkCmd())
		}

	case tea.MouseMsg:
		if !m.focus {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			p := m.screenToPos(msg.X, msg.Y)
			switch msg.Action {
			case tea.MouseActionPress:
				m.selecting = true
				m.selectStart = p
				m.selectEnd = p
				m.row = p.row
				m.col = p.col
				m.clampCursor()
				m.refresh()
			case tea.MouseActionMotion:
				if m.selecting {
					m.selectEnd = p
					m.refresh()
				}
			case tea.MouseActionRelease:
				if m.selecting && m.hasSelection() {
					text := m.selectedText()
					if text != "" {
						cmds = append(cmds, func() tea.Msg {
							_ = clipboard.WriteAll(text)
							return nil
						})
					}
				}
				m.clearSelection()
				m.refresh()
			}
		case tea.MouseButtonWheelUp:
			m.scroll -= 3
			m.clampScroll()
		case tea.MouseButtonWheelDown:
			m.scroll += 3
			m.clampScroll()
		}
	}

	// Forward to cursor for blink handling
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Show placeholder when empty
	if len(m.lines) == 1 && len(m.lines[0]) == 0 && m.Placeholder != "" {
		return m.placeholderView()
	}

	tw := m.textWidth()

	var b strings.Builder
	for vi := 0; vi < m.height; vi++ {
		row := m.scroll + vi
		if vi > 0 {
			b.WriteByte('\n')
		}

		if row >= len(m.lines) {
			b.WriteString(strings.Repeat(" ", m.width))
			continue
		}

		// -- Gutter (line numbers) -------------------------------------------
		if m.ShowLineNumbers {
			digits := m.gutterWidth - 1
			num := fmt.Sprintf("%*d ", digits, row+1)
			b.WriteString(m.LineNumStyle.Render(num))
		}

		// -- Decorated text --------------------------------------------------
		rl := m.rendered[row]
		var rendered string
		switch {
		case m.focus && row == m.row:
			rendered = m.overlayCursor(rl)
		case rl.role == decor.RoleRule && rl.width() == 0:
			rendered = m.theme.Rule.Render(strings.Repeat("─", tw))
		default:
			rendered = rl.ansi
		}

		// Truncate to text width and pad
		rw := lipgloss.Width(rendered)
		if rw > tw {
			rendered = ansi.Truncate(rendered, tw, "")
			rw = lipgloss.Width(rendered)
		}
		b.WriteString(rendered)
		if rw < tw {
			pad := strings.Repeat(" ", tw-rw)
			if rl.role.IsCode() {
				pad = m.theme.CodeBg.Render(pad)
			}
			b.WriteString(pad)
		}
	}

	return b.String()
}

// overlayCursor splices the cursor glyph into the rendered cursor row at the
// visual column matching the buffer position.
func (m Model) overlayCursor(rl renderedLine) string {
	off := m.byteOffset(pos{m.row, m.col})
	vcol := rl.visualCol(off)
	total := lipgloss.Width(rl.ansi)

	before := ansi.Cut(rl.ansi, 0, vcol)
	after := ""
	ch := " "
	if vcol < total {
		ch = ansi.Strip(ansi.Cut(rl.ansi, vcol, vcol+1))
		after = ansi.Cut(rl.ansi, vcol+1, total)
	}
	if ch == "" {
		ch = " "
	}

	m.cursor.SetChar(ch)
	cursorView := m.cursor.View()
	return before + cursorView + after
}

// ---------------------------------------------------------------------------
// Placeholder view (shown when empty)
// ---------------------------------------------------------------------------

func (m Model) placeholderView() string {
	if m.Placeholder == "" {
		return ""
	}
	tw := m.textWidth()

	var b strings.Builder
	// Gutter
	if m.ShowLineNumbers {
		digits := m.gutterWidth - 1
		num := fmt.Sprintf("%*d ", digits, 1)
		b.WriteString(m.LineNumStyle.Render(num))
	}

	// First line: cursor (if focused) then placeholder text
	if m.focus {
		phRunes := []rune(m.Placeholder)
		m.cursor.SetChar(string(phRunes[0]))
		m.cursor.TextStyle = m.PlaceholderSty
		b.WriteString(m.cursor.View())
		rest := m.PlaceholderSty.Render(string(phRunes[1:]))
		rw := lipgloss.Width(m.cursor.View()) + lipgloss.Width(rest)
		b.WriteString(rest)
		if rw < tw {
			b.WriteString(strings.Repeat(" ", tw-rw))
		}
	} else {
		ph := m.PlaceholderSty.Render(m.Placeholder)
		pw := lipgloss.Width(ph)
		b.WriteString(ph)
		if pw < tw {
			b.WriteString(strings.Repeat(" ", tw-pw))
		}
	}

	// Remaining rows: empty
	for vi := 1; vi < m.height; vi++ {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", m.width))
	}

	return b.String()
}
