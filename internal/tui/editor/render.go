package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/livemark/internal/decor"
)

// piece is one visual segment of a rendered line, tracking the source byte
// range it consumed so editor columns can be mapped to screen columns.
type piece struct {
	srcFrom int
	srcTo   int
	text    string // plain visible text, "" when hidden
	visible bool   // true when text is the source slice itself
}

// renderedLine is the visual form of one document line.
type renderedLine struct {
	ansi   string
	role   decor.LineRole
	pieces []piece
}

// renderLine applies the decorations covering line num to its text. lang is
// the fence language for code lines, "" otherwise.
func renderLine(doc *decor.Document, num int, set decor.Set, th Theme, lang string) renderedLine {
	ln := doc.Line(num)
	var rl renderedLine
	var spans []decor.Decoration
	var replace *decor.Decoration
	for _, d := range set.Decorations() {
		if d.From < ln.Start || d.From > ln.End() {
			continue
		}
		if d.Kind == decor.LineTag {
			rl.role = d.Role
			continue
		}
		if d.Kind == decor.WidgetReplace && d.From == ln.Start && d.To == ln.End() {
			dd := d
			replace = &dd
			continue
		}
		spans = append(spans, d)
	}

	if rl.role.IsCode() {
		return renderCodeLine(ln, rl.role, replace, th, lang)
	}

	base := th.lineStyle(rl.role)
	var b strings.Builder
	visible := func(from, to int, sty lipgloss.Style) {
		if to <= from {
			return
		}
		txt := ln.Text[from-ln.Start : to-ln.Start]
		b.WriteString(sty.Render(txt))
		rl.pieces = append(rl.pieces, piece{from, to, txt, true})
	}
	pos := ln.Start
	for _, d := range spans {
		if d.From > pos {
			visible(pos, d.From, base)
			pos = d.From
		}
		switch d.Kind {
		case decor.Hide:
			rl.pieces = append(rl.pieces, piece{d.From, d.To, "", false})
		case decor.Mark:
			visible(d.From, d.To, th.markStyle(d.Style))
		case decor.WidgetReplace, decor.WidgetInsert:
			w := renderWidget(d.Widget, th)
			b.WriteString(w)
			rl.pieces = append(rl.pieces, piece{d.From, d.To, ansi.Strip(w), false})
		}
		if d.To > pos {
			pos = d.To
		}
	}
	visible(pos, ln.End(), base)
	rl.ansi = b.String()
	return rl
}

// renderCodeLine draws one line of a fenced block. Hidden fence markers are
// replaced by their widget; raw markers get the block background; body lines
// go through Chroma.
func renderCodeLine(ln decor.Line, role decor.LineRole, replace *decor.Decoration, th Theme, lang string) renderedLine {
	rl := renderedLine{role: role}
	if replace != nil {
		w := renderWidget(replace.Widget, th)
		rl.ansi = w
		rl.pieces = []piece{{ln.Start, ln.End(), ansi.Strip(w), false}}
		return rl
	}
	if role == decor.RoleCodeMiddle && lang != "" {
		rl.ansi = highlightLine(ln.Text, lang, th.SyntaxTheme, th.CodeHex)
	} else {
		rl.ansi = th.CodeBg.Render(ln.Text)
	}
	rl.pieces = []piece{{ln.Start, ln.End(), ln.Text, true}}
	return rl
}

// visualCol maps a source byte offset inside the line to a screen column.
// Offsets inside hidden or replaced spans map to the span's left edge.
func (rl renderedLine) visualCol(off int) int {
	col := 0
	for _, p := range rl.pieces {
		if off < p.srcFrom {
			return col
		}
		if off < p.srcTo {
			if p.visible {
				return col + ansi.StringWidth(p.text[:off-p.srcFrom])
			}
			return col
		}
		col += ansi.StringWidth(p.text)
	}
	return col
}

// sourceOffset maps a screen column back to a byte offset in the line.
// Columns over hidden or replaced spans map to the span's start; columns past
// the rendered content map to the line end.
func (rl renderedLine) sourceOffset(vcol int, ln decor.Line) int {
	col := 0
	for _, p := range rl.pieces {
		w := ansi.StringWidth(p.text)
		if vcol < col+w {
			if !p.visible {
				return p.srcFrom
			}
			rem := vcol - col
			off := p.srcFrom
			for _, r := range p.text {
				rw := ansi.StringWidth(string(r))
				if rem < rw {
					break
				}
				rem -= rw
				off += utf8.RuneLen(r)
			}
			return off
		}
		col += w
	}
	return ln.End()
}

// plain returns the visible text of the line without any styling.
func (rl renderedLine) plain() string {
	var b strings.Builder
	for _, p := range rl.pieces {
		b.WriteString(p.text)
	}
	return b.String()
}

// width returns the visible cell width of the line.
func (rl renderedLine) width() int {
	return ansi.StringWidth(rl.plain())
}
