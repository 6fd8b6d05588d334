package decor

// escapedAt reports whether the character at byte position p is escaped,
// i.e. preceded by an odd number of consecutive backslashes.
func escapedAt(text string, p int) bool {
	n := 0
	for i := p - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// anyOverlap reports whether any selection touches the span [from,to).
// Boundary positions count: a caret sitting exactly on a delimiter edge is
// "inside", which is what keeps raw syntax visible while the user is next
// to it.
func anyOverlap(sels []Selection, from, to int) bool {
	for _, r := range sels {
		if r.From >= from && r.From <= to {
			return true
		}
		if r.To >= from && r.To <= to {
			return true
		}
		if r.From <= from && r.To >= to {
			return true
		}
	}
	return false
}

// claimSet records spans already assigned an inline decoration during one
// build, so earlier-priority patterns win over later ones that would match
// the same source text. Linear scan is fine: claims are line-bounded and few.
type claimSet struct {
	spans []Selection
}

// claimed reports whether [from,to) overlaps any claimed span, partially or
// fully, in either direction.
func (c *claimSet) claimed(from, to int) bool {
	for _, s := range c.spans {
		if from < s.To && s.From < to {
			return true
		}
	}
	return false
}

// claim records [from,to) as taken.
func (c *claimSet) claim(from, to int) {
	c.spans = append(c.spans, Selection{From: from, To: to})
}
