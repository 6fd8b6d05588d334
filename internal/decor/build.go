package decor

// BuildFunc is the shape of the rebuild callback a host surface registers.
// The host calls it on every document, selection, or viewport change and
// holds the returned set for rendering until the next call.
type BuildFunc func(*Document, []Selection) Set

// builder carries the transient state of one rebuild. Nothing here outlives
// the Build call that created it.
type builder struct {
	doc    *Document
	sels   []Selection
	claims claimSet
	fenced map[int]bool // line numbers owned by fenced code blocks
	out    []Decoration
}

func (b *builder) emit(d Decoration) { b.out = append(b.out, d) }

// Build performs one full synchronous pass over the document and returns a
// fresh, position-sorted decoration set. It never fails: malformed or
// partial markdown simply produces no match for the construct in question.
func Build(doc *Document, sels []Selection) Set {
	b := &builder{
		doc:    doc,
		sels:   sels,
		fenced: make(map[int]bool),
	}

	// Fenced blocks first, over the whole document: the pass must see the
	// original text, and the lines it claims skip everything below.
	b.scanFences()

	for n := 1; n <= doc.LineCount(); n++ {
		if b.fenced[n] {
			continue
		}
		ln := doc.Line(n)
		if b.scanBlockLine(ln) {
			b.scanInline(ln)
		}
	}

	return newSet(b.out)
}
