package decor

import "sort"

// Kind discriminates the decoration instruction variants.
type Kind uint8

const (
	// Hide suppresses rendering of the [From,To) span.
	Hide Kind = iota
	// Mark applies a semantic Style to the [From,To) span without hiding it.
	Mark
	// LineTag assigns a Role to an entire line. From/To cover the line.
	LineTag
	// WidgetReplace substitutes the [From,To) span with a rendered Widget.
	WidgetReplace
	// WidgetInsert places a Widget at From without consuming characters.
	// From == To.
	WidgetInsert
)

// Style is the semantic tag carried by Mark decorations.
type Style uint8

const (
	StyleBold Style = iota
	StyleItalic
	StyleBoldItalic
	StyleStrike
	StyleCode
	StyleLinkText
)

// LineRole is the semantic tag carried by LineTag decorations.
type LineRole uint8

const (
	RoleNone LineRole = iota
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleHeading4
	RoleBlockquote
	RoleListItem
	RoleRule
	RoleCodeFirst
	RoleCodeMiddle
	RoleCodeLast
)

// IsCode reports whether the role belongs to a fenced code block.
func (r LineRole) IsCode() bool {
	return r == RoleCodeFirst || r == RoleCodeMiddle || r == RoleCodeLast
}

// headingRole maps a heading level to its role, clamping to level 4.
func headingRole(level int) LineRole {
	if level > 4 {
		level = 4
	}
	return RoleHeading1 + LineRole(level-1)
}

// WidgetKind discriminates the closed set of widget variants. Rendering is
// the host's job: it maps each kind to a render function, so adding a widget
// is a variant addition rather than a new type hierarchy.
type WidgetKind uint8

const (
	// BulletWidget stands in for a consumed list marker ("- " or "* ").
	BulletWidget WidgetKind = iota
	// ImageWidget previews an inline image; inserted after its hidden source.
	ImageWidget
	// EmptyFenceWidget is a zero-width placeholder keeping a hidden fence
	// line's height and background.
	EmptyFenceWidget
)

// Widget is the payload of WidgetReplace and WidgetInsert decorations.
// URL and Alt are set for ImageWidget; Indent for BulletWidget.
type Widget struct {
	Kind   WidgetKind
	URL    string
	Alt    string
	Indent int
}

// Decoration is a single rendering instruction. Only the fields relevant to
// its Kind are meaningful: Style for Mark, Role for LineTag, Widget for the
// widget kinds.
type Decoration struct {
	Kind     Kind
	From, To int
	Style    Style
	Role     LineRole
	Widget   *Widget
}

// Set is an immutable, position-sorted list of decorations produced by one
// build. The next build replaces it entirely.
type Set struct {
	decos []Decoration
}

// newSet sorts decorations ascending by start offset. The sort is stable, so
// instructions starting at the same offset keep their insertion order; the
// resulting order is a contract for consumers.
func newSet(decos []Decoration) Set {
	sort.SliceStable(decos, func(i, j int) bool {
		return decos[i].From < decos[j].From
	})
	return Set{decos: decos}
}

// Len returns the number of decorations in the set.
func (s Set) Len() int { return len(s.decos) }

// Decorations returns the sorted instructions. Callers must not modify the
// returned slice.
func (s Set) Decorations() []Decoration { return s.decos }
