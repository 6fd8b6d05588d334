package editor

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/livemark/internal/decor"
)

// Theme maps decoration semantics to terminal styles. The code block
// background is taken from the Chroma syntax theme so fenced content and its
// padding always agree.
type Theme struct {
	SyntaxTheme string // Chroma style name for fenced code
	Images      bool   // render inline image widgets

	Bold       lipgloss.Style
	Italic     lipgloss.Style
	BoldItalic lipgloss.Style
	Strike     lipgloss.Style
	Code       lipgloss.Style
	Link       lipgloss.Style

	Heading [4]lipgloss.Style
	Quote   lipgloss.Style
	Rule    lipgloss.Style
	Bullet  lipgloss.Style
	CodeBg  lipgloss.Style
	CodeHex string // "#rrggbb" bg injected into Chroma output, may be ""
}

// NewTheme builds the default theme on top of the given Chroma style.
func NewTheme(syntaxTheme string, images bool) Theme {
	t := Theme{
		SyntaxTheme: syntaxTheme,
		Images:      images,

		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		BoldItalic: lipgloss.NewStyle().Bold(true).Italic(true),
		Strike:     lipgloss.NewStyle().Strikethrough(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("#d19a66")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")).Underline(true),

		Quote:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a")).Italic(true),
		Rule:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5f5f5f")),
		Bullet: lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")),
	}
	t.Heading = [4]lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e06c75")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e5c07b")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98c379")),
		lipgloss.NewStyle().Bold(true),
	}
	if hex := themeBg(syntaxTheme); hex != "" {
		t.CodeHex = hex
		t.CodeBg = lipgloss.NewStyle().Background(lipgloss.Color(hex))
	}
	return t
}

// markStyle returns the style for an inline mark.
func (t Theme) markStyle(s decor.Style) lipgloss.Style {
	switch s {
	case decor.StyleBold:
		return t.Bold
	case decor.StyleItalic:
		return t.Italic
	case decor.StyleBoldItalic:
		return t.BoldItalic
	case decor.StyleStrike:
		return t.Strike
	case decor.StyleCode:
		return t.Code
	case decor.StyleLinkText:
		return t.Link
	}
	return lipgloss.NewStyle()
}

// lineStyle returns the base style applied to a line's visible text for a
// given role. Code roles are handled by the syntax highlighter instead.
func (t Theme) lineStyle(r decor.LineRole) lipgloss.Style {
	switch r {
	case decor.RoleHeading1, decor.RoleHeading2, decor.RoleHeading3, decor.RoleHeading4:
		return t.Heading[r-decor.RoleHeading1]
	case decor.RoleBlockquote:
		return t.Quote
	case decor.RoleRule:
		return t.Rule
	}
	return lipgloss.NewStyle()
}

// themeBg extracts the background hex color from a Chroma style.
// Returns "" if no background is set.
func themeBg(theme string) string {
	sty := styles.Get(theme)
	if sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String() // "#rrggbb"
}
