package decor

import "regexp"

// inlinePattern is one entry of the priority-ordered inline syntax table.
// The regexes use RE2, which has no lookbehind; the link-vs-image and
// italic-adjacency rules that would want one are enforced by explicit
// character checks in scanInline instead.
type inlinePattern struct {
	style   Style
	rx      *regexp.Regexp
	isImage bool // hide-all + widget-insert variant
	isLink  bool // reject matches preceded by '!'
	single  bool // single-char delimiter: reject when adjacent to '*'/'_'
}

// Priority order is load-bearing: earlier patterns claim their spans first,
// so e.g. an image never also fires as a link, and bold+italic wins over
// bold over italic on the same run of stars.
var inlinePatterns = []inlinePattern{
	{style: StyleLinkText, rx: regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`), isImage: true},
	{style: StyleLinkText, rx: regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`), isLink: true},
	{style: StyleBoldItalic, rx: regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)},
	{style: StyleBold, rx: regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)},
	{style: StyleItalic, rx: regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`), single: true},
	{style: StyleStrike, rx: regexp.MustCompile(`~~([^~]+)~~`)},
	{style: StyleCode, rx: regexp.MustCompile("`([^`]+)`")},
}

// scanInline decorates one line's inline constructs. Only lines that fell
// through the block scanner reach here.
func (b *builder) scanInline(ln Line) {
	text := b.doc.Text()

	for _, p := range inlinePatterns {
		for off := 0; off < len(ln.Text); {
			m := p.rx.FindStringSubmatchIndex(ln.Text[off:])
			if m == nil {
				break
			}
			for i := range m {
				if m[i] >= 0 {
					m[i] += off
				}
			}
			from := ln.Start + m[0]
			to := ln.Start + m[1]

			// A rejected candidate gives up only its first position.
			// Skipping the whole match would also consume text that a
			// later, valid construct needs ("**bold** *it*" loses the
			// italics if the rejected "*bold*" swallows through index 7).
			off = m[0] + 1

			if escapedAt(text, from) {
				continue
			}
			if p.isLink && from > 0 && text[from-1] == '!' {
				continue // actually an image; pattern 1 owns it
			}
			if p.single && delimiterAdjacent(text, from, to) {
				continue
			}
			if b.claims.claimed(from, to) {
				continue
			}
			b.claims.claim(from, to)
			off = m[1]

			overlap := anyOverlap(b.sels, from, to)

			if p.isImage {
				// Cursor elsewhere: hide the whole markup and put the image
				// widget right after it. Cursor on it: raw markup, nothing
				// emitted at all.
				if !overlap {
					alt := ln.Text[m[2]:m[3]]
					url := ln.Text[m[4]:m[5]]
					b.emit(Decoration{Kind: Hide, From: from, To: to})
					b.emit(Decoration{
						Kind:   WidgetInsert,
						From:   to,
						To:     to,
						Widget: &Widget{Kind: ImageWidget, URL: url, Alt: alt},
					})
				}
				continue
			}

			innerFrom, innerTo := innerGroup(m)
			innerFrom += ln.Start
			innerTo += ln.Start

			if overlap {
				// Delimiters stay visible and unstyled; only the content is
				// marked.
				b.emit(Decoration{Kind: Mark, From: innerFrom, To: innerTo, Style: p.style})
				continue
			}
			b.emit(Decoration{Kind: Hide, From: from, To: innerFrom})
			b.emit(Decoration{Kind: Mark, From: innerFrom, To: innerTo, Style: p.style})
			b.emit(Decoration{Kind: Hide, From: innerTo, To: to})
		}
	}
}

// innerGroup returns the line-local bounds of the first participating
// capture group. Alternation patterns (bold, italic) only ever fill one arm.
func innerGroup(m []int) (int, int) {
	for i := 2; i+1 < len(m); i += 2 {
		if m[i] >= 0 {
			return m[i], m[i+1]
		}
	}
	return m[0], m[1]
}

// delimiterAdjacent reports whether a single-delimiter match sits right next
// to another emphasis delimiter, which would mean we are looking at the
// inside of a bold run rather than genuine italics.
func delimiterAdjacent(text string, from, to int) bool {
	if from > 0 && (text[from-1] == '*' || text[from-1] == '_') {
		return true
	}
	if to < len(text) && (text[to] == '*' || text[to] == '_') {
		return true
	}
	return false
}
