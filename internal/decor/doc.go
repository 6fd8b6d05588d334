// Package decor computes live markdown decorations: given an immutable
// document snapshot and the active selections, Build returns the set of
// hide/style/line-tag/widget instructions a rendering surface needs to show
// styled markdown while keeping raw syntax visible wherever the cursor is.
//
// Build is a pure function. Every text or selection change triggers a full
// rebuild; there is no incremental path and no state carried between builds.
package decor

import (
	"sort"
	"strings"
)

// Line is one physical line of a document. Start is the byte offset of the
// first character; Text excludes the trailing newline.
type Line struct {
	Num   int // 1-indexed
	Start int
	Text  string
}

// End returns the byte offset just past the last character of the line,
// excluding the newline.
func (l Line) End() int { return l.Start + len(l.Text) }

// Document is an immutable snapshot of the text being decorated.
type Document struct {
	text  string
	lines []Line
}

// NewDocument splits text into lines. An empty string still yields a single
// empty line, so a Document always has at least one line.
func NewDocument(text string) *Document {
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	off := 0
	for i, t := range raw {
		lines[i] = Line{Num: i + 1, Start: off, Text: t}
		off += len(t) + 1 // +1 for the newline
	}
	return &Document{text: text, lines: lines}
}

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// LineCount returns the number of physical lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the 1-indexed nth line. Out-of-range numbers are clamped.
func (d *Document) Line(n int) Line {
	if n < 1 {
		n = 1
	}
	if n > len(d.lines) {
		n = len(d.lines)
	}
	return d.lines[n-1]
}

// LineAt returns the line containing the given byte offset. Offsets past the
// end of the text resolve to the last line.
func (d *Document) LineAt(off int) Line {
	i := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].Start > off
	})
	if i == 0 {
		return d.lines[0]
	}
	return d.lines[i-1]
}

// Selection is a half-open cursor range. From == To denotes a caret.
type Selection struct {
	From, To int
}

// Caret returns a zero-width selection at pos.
func Caret(pos int) Selection { return Selection{From: pos, To: pos} }
