// Package tui is the terminal application: a decorated markdown editor with
// a status bar, a read-only preview pane, and history snapshots on save.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/livemark/internal/config"
	"github.com/xonecas/livemark/internal/decor"
	"github.com/xonecas/livemark/internal/history"
	"github.com/xonecas/livemark/internal/tui/editor"
)

var (
	colorAccent = lipgloss.Color("#61afef")
	colorMuted  = lipgloss.Color("#5f5f5f")
	colorBar    = lipgloss.Color("#2a2a2a")
)

type styles struct {
	Border     lipgloss.Style
	StatusText lipgloss.Style
	StatusKey  lipgloss.Style
	StatusMsg  lipgloss.Style
}

func newStyles() styles {
	return styles{
		Border:     lipgloss.NewStyle().Foreground(colorBar),
		StatusText: lipgloss.NewStyle().Foreground(colorMuted),
		StatusKey:  lipgloss.NewStyle().Foreground(colorAccent),
		StatusMsg:  lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	}
}

// Model is the top-level bubbletea model.
type Model struct {
	cfg   *config.Config
	path  string
	store *history.Store

	ed     editor.Model
	styles styles

	width  int
	height int

	preview       bool
	previewLines  []string
	previewScroll int

	saved  string // buffer content at last save
	status string // transient message shown until the next keypress
}

// New builds the application model around an initial buffer.
func New(cfg *config.Config, path, content string, store *history.Store) Model {
	th := editor.NewTheme(cfg.UI.SyntaxThemeOrDefault(), cfg.UI.Images)
	ed := editor.New(th, decor.Build)
	ed.ShowLineNumbers = cfg.UI.ShowLineNumbers
	ed.Placeholder = "Start typing markdown…"
	ed.LineNumStyle = lipgloss.NewStyle().Foreground(colorBar)
	ed.PlaceholderSty = lipgloss.NewStyle().Foreground(colorMuted)
	ed.SetValue(content)
	ed.Focus()

	return Model{
		cfg:    cfg,
		path:   path,
		store:  store,
		ed:     ed,
		styles: newStyles(),
		saved:  content,
	}
}

func (m Model) Init() tea.Cmd {
	return editor.Blink
}

func (m Model) dirty() bool { return m.ed.Value() != m.saved }
