package decor

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRx  = regexp.MustCompile("^```([A-Za-z0-9_+.-]*)[ \t]*$")
	fenceCloseRx = regexp.MustCompile("^```[ \t]*$")
	headingRx    = regexp.MustCompile(`^(#{1,6}) (.+)$`)
	listItemRx   = regexp.MustCompile(`^([ \t]*)([-*]) `)
)

// FenceLanguage returns the language tag of a fence opener line, or "" when
// the line is not a fence opener. Exposed for renderers that want to syntax-
// highlight fenced content.
func FenceLanguage(lineText string) string {
	m := fenceOpenRx.FindStringSubmatch(lineText)
	if m == nil {
		return ""
	}
	return m[1]
}

// scanFences runs the document-wide fenced-code-block pass. It must see the
// original text before any other decision: lines claimed here are excluded
// from all later block and inline processing.
//
// An opener with no matching closer is an explicit non-match; the would-be
// block stays entirely undecorated.
func (b *builder) scanFences() {
	n := 1
	for n <= b.doc.LineCount() {
		if !fenceOpenRx.MatchString(b.doc.Line(n).Text) {
			n++
			continue
		}
		closing := 0
		for m := n + 1; m <= b.doc.LineCount(); m++ {
			if fenceCloseRx.MatchString(b.doc.Line(m).Text) {
				closing = m
				break
			}
		}
		if closing == 0 {
			n++
			continue
		}
		b.markFence(n, closing)
		n = closing + 1
	}
}

// markFence tags lines first..last as a code block and, when the cursor is
// outside the whole block, replaces both fence lines with zero-width
// placeholders so the raw fences disappear without collapsing line height.
func (b *builder) markFence(first, last int) {
	for n := first; n <= last; n++ {
		b.fenced[n] = true
		ln := b.doc.Line(n)
		role := RoleCodeMiddle
		switch n {
		case first:
			role = RoleCodeFirst
		case last:
			role = RoleCodeLast
		}
		b.emit(Decoration{Kind: LineTag, From: ln.Start, To: ln.End(), Role: role})
	}

	blockFrom := b.doc.Line(first).Start
	blockTo := b.doc.Line(last).End()
	if anyOverlap(b.sels, blockFrom, blockTo) {
		return // cursor inside the block: fences render as raw text
	}
	for _, n := range []int{first, last} {
		ln := b.doc.Line(n)
		b.emit(Decoration{
			Kind:   WidgetReplace,
			From:   ln.Start,
			To:     ln.End(),
			Widget: &Widget{Kind: EmptyFenceWidget},
		})
	}
}

// scanBlockLine applies the per-line block rules in order. It returns true
// when the line should continue to inline scanning: plain lines and list
// items do, headings, blockquotes and rules stop here.
func (b *builder) scanBlockLine(ln Line) bool {
	cursorOn := anyOverlap(b.sels, ln.Start, ln.End())

	if m := headingRx.FindStringSubmatch(ln.Text); m != nil {
		level := len(m[1])
		b.emit(Decoration{Kind: LineTag, From: ln.Start, To: ln.End(), Role: headingRole(level)})
		if !cursorOn {
			// Hide the hashes and the following space.
			b.emit(Decoration{Kind: Hide, From: ln.Start, To: ln.Start + level + 1})
		}
		return false
	}

	if strings.HasPrefix(ln.Text, "> ") && len(ln.Text) > 2 {
		b.emit(Decoration{Kind: LineTag, From: ln.Start, To: ln.End(), Role: RoleBlockquote})
		if !cursorOn {
			b.emit(Decoration{Kind: Hide, From: ln.Start, To: ln.Start + 2})
		}
		return false
	}

	if t := strings.TrimSpace(ln.Text); t == "---" || t == "***" || t == "___" {
		// With the cursor on the line the rule renders as plain raw text:
		// no tag, no hide.
		if !cursorOn {
			b.emit(Decoration{Kind: LineTag, From: ln.Start, To: ln.End(), Role: RoleRule})
			b.emit(Decoration{Kind: Hide, From: ln.Start, To: ln.End()})
		}
		return false
	}

	if m := listItemRx.FindStringSubmatch(ln.Text); m != nil {
		indent := len(m[1])
		b.emit(Decoration{Kind: LineTag, From: ln.Start, To: ln.End(), Role: RoleListItem})
		if !cursorOn {
			b.emit(Decoration{
				Kind:   WidgetReplace,
				From:   ln.Start,
				To:     ln.Start + indent + 2,
				Widget: &Widget{Kind: BulletWidget, Indent: indent},
			})
		}
		// List items keep going: emphasis inside list text still decorates.
		return true
	}

	return true
}
