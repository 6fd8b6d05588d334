package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	if m.preview {
		m.renderPreviewPane(&b)
	} else {
		b.WriteString(m.ed.View())
		b.WriteByte('\n')
	}
	m.renderStatusBar(&b)
	return b.String()
}

func (m Model) renderPreviewPane(b *strings.Builder) {
	h := editorHeight(m.height)
	for i := 0; i < h; i++ {
		row := m.previewScroll + i
		if row < len(m.previewLines) {
			line := m.previewLines[row]
			if lipgloss.Width(line) > m.width {
				line = ansi.Truncate(line, m.width, "…")
			}
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
}

// renderStatusBar writes the separator and the status bar.
func (m Model) renderStatusBar(b *strings.Builder) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// -- Left segments --
	name := m.path
	if m.dirty() {
		name += "*"
	}
	row, col := m.ed.CursorPos()
	left := m.styles.StatusText.Render(fmt.Sprintf(" %s  %d:%d", name, row, col))
	if m.status != "" {
		left += m.styles.StatusMsg.Render("  " + m.status)
	}

	// -- Right segments --
	hints := []string{"^S save", "^P preview", "^Q quit"}
	if m.preview {
		hints = []string{"esc edit", "^Q quit"}
	}
	var parts []string
	for _, h := range hints {
		k, rest, _ := strings.Cut(h, " ")
		parts = append(parts, m.styles.StatusKey.Render(k)+m.styles.StatusText.Render(" "+rest))
	}
	right := strings.Join(parts, m.styles.StatusText.Render("  ")) + " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
}
