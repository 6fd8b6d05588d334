package tui

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ed.SetWidth(msg.Width)
		m.ed.SetHeight(editorHeight(msg.Height))
		if m.preview {
			m.renderPreview()
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		case "ctrl+p":
			m.preview = !m.preview
			if m.preview {
				m.renderPreview()
			}
			return m, nil
		}
		if m.preview {
			m.updatePreview(msg)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ed, cmd = m.ed.Update(msg)
	return m, cmd
}

// editorHeight leaves room for the separator and status bar.
func editorHeight(total int) int {
	h := total - 2
	if h < 1 {
		h = 1
	}
	return h
}

// save writes the buffer to disk and records a history snapshot.
func (m *Model) save() {
	content := m.ed.Value()
	if err := os.WriteFile(m.path, []byte(content), 0o644); err != nil {
		log.Warn().Err(err).Str("path", m.path).Msg("save failed")
		m.status = "save failed: " + err.Error()
		return
	}
	if err := m.store.Save(m.path, content); err != nil {
		log.Warn().Err(err).Msg("snapshot failed")
	}
	m.saved = content
	m.status = "saved"
}

// renderPreview runs the buffer through glamour at the current width.
func (m *Model) renderPreview() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.width),
	)
	if err != nil {
		log.Warn().Err(err).Msg("preview renderer")
		m.previewLines = []string{"preview unavailable"}
		return
	}
	out, err := r.Render(m.ed.Value())
	if err != nil {
		log.Warn().Err(err).Msg("preview render")
		m.previewLines = []string{"preview unavailable"}
		return
	}
	m.previewLines = strings.Split(strings.TrimRight(out, "\n"), "\n")
	m.clampPreviewScroll()
}

func (m *Model) updatePreview(msg tea.KeyMsg) {
	h := editorHeight(m.height)
	switch msg.String() {
	case "up", "k":
		m.previewScroll--
	case "down", "j":
		m.previewScroll++
	case "pgup":
		m.previewScroll -= h
	case "pgdown":
		m.previewScroll += h
	case "home":
		m.previewScroll = 0
	case "end":
		m.previewScroll = len(m.previewLines)
	case "esc":
		m.preview = false
	}
	m.clampPreviewScroll()
}

func (m *Model) clampPreviewScroll() {
	max := len(m.previewLines) - editorHeight(m.height)
	if max < 0 {
		max = 0
	}
	if m.previewScroll > max {
		m.previewScroll = max
	}
	if m.previewScroll < 0 {
		m.previewScroll = 0
	}
}
