package decor

import (
	"fmt"
	"reflect"
	"testing"
)

// Build satisfies the host registration shape.
var _ BuildFunc = Build

func styleName(s Style) string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleStrike:
		return "strike"
	case StyleCode:
		return "code"
	case StyleLinkText:
		return "link"
	}
	return "?"
}

func roleName(r LineRole) string {
	switch r {
	case RoleHeading1, RoleHeading2, RoleHeading3, RoleHeading4:
		return fmt.Sprintf("h%d", r-RoleHeading1+1)
	case RoleBlockquote:
		return "quote"
	case RoleListItem:
		return "list"
	case RoleRule:
		return "rule"
	case RoleCodeFirst:
		return "code-first"
	case RoleCodeMiddle:
		return "code-middle"
	case RoleCodeLast:
		return "code-last"
	}
	return "?"
}

func widgetName(w *Widget) string {
	switch w.Kind {
	case BulletWidget:
		return fmt.Sprintf("bullet(indent=%d)", w.Indent)
	case ImageWidget:
		return fmt.Sprintf("image(url=%s, alt=%s)", w.URL, w.Alt)
	case EmptyFenceWidget:
		return "empty-fence"
	}
	return "?"
}

// dumpSet renders a decoration set as one readable line per instruction, in
// set order. Tests compare these instead of raw structs so failures show
// what actually differs.
func dumpSet(s Set) []string {
	out := make([]string, 0, s.Len())
	for _, d := range s.Decorations() {
		switch d.Kind {
		case Hide:
			out = append(out, fmt.Sprintf("hide [%d,%d)", d.From, d.To))
		case Mark:
			out = append(out, fmt.Sprintf("mark %s [%d,%d)", styleName(d.Style), d.From, d.To))
		case LineTag:
			out = append(out, fmt.Sprintf("line %s [%d,%d)", roleName(d.Role), d.From, d.To))
		case WidgetReplace:
			out = append(out, fmt.Sprintf("replace %s [%d,%d)", widgetName(d.Widget), d.From, d.To))
		case WidgetInsert:
			out = append(out, fmt.Sprintf("insert %s at %d", widgetName(d.Widget), d.From))
		}
	}
	return out
}

func checkDump(t *testing.T, text string, sels []Selection, want []string) {
	t.Helper()
	got := dumpSet(Build(NewDocument(text), sels))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(%q, %v):\n got %q\nwant %q", text, sels, got, want)
	}
}

func TestBoldHidden(t *testing.T) {
	checkDump(t, "**bold**", nil, []string{
		"hide [0,2)",
		"mark bold [2,6)",
		"hide [6,8)",
	})
}

func TestBoldCaretInside(t *testing.T) {
	checkDump(t, "**bold**", []Selection{Caret(3)}, []string{
		"mark bold [2,6)",
	})
}

func TestEscapedItalic(t *testing.T) {
	s := Build(NewDocument(`\*not italic\*`), nil)
	if s.Len() != 0 {
		t.Errorf("escaped delimiters still decorated: %q", dumpSet(s))
	}
}

func TestImageHidden(t *testing.T) {
	checkDump(t, "![alt](http://x/y.png)\nx", []Selection{Caret(24)}, []string{
		"hide [0,22)",
		"insert image(url=http://x/y.png, alt=alt) at 22",
	})
}

func TestImageCursorInside(t *testing.T) {
	s := Build(NewDocument("![alt](http://x/y.png)\nx"), []Selection{Caret(5)})
	if s.Len() != 0 {
		t.Errorf("image under cursor should show raw markup only, got %q", dumpSet(s))
	}
}

func TestFenceHidden(t *testing.T) {
	checkDump(t, "```js\ncode\n```\nx", []Selection{Caret(16)}, []string{
		"line code-first [0,5)",
		"replace empty-fence [0,5)",
		"line code-middle [6,10)",
		"line code-last [11,14)",
		"replace empty-fence [11,14)",
	})
}

func TestFenceCursorInside(t *testing.T) {
	// Cursor on the opening fence line: both placeholders disappear, the
	// block line tags stay.
	checkDump(t, "```js\ncode\n```\nx", []Selection{Caret(0)}, []string{
		"line code-first [0,5)",
		"line code-middle [6,10)",
		"line code-last [11,14)",
	})
}

func TestUnterminatedFence(t *testing.T) {
	s := Build(NewDocument("```js\ncode"), nil)
	if s.Len() != 0 {
		t.Errorf("unterminated fence should not decorate, got %q", dumpSet(s))
	}
}

func TestHeadingStopsInline(t *testing.T) {
	// The *em* inside the heading line is left alone.
	checkDump(t, "# Heading *em*\nx", []Selection{Caret(16)}, []string{
		"line h1 [0,14)",
		"hide [0,2)",
	})
}

func TestHeadingCursorOnLine(t *testing.T) {
	checkDump(t, "# Hi", []Selection{Caret(2)}, []string{
		"line h1 [0,4)",
	})
}

func TestHeadingLevelClamp(t *testing.T) {
	checkDump(t, "##### deep\nx", []Selection{Caret(12)}, []string{
		"line h4 [0,10)",
		"hide [0,6)",
	})
}

func TestBlockquote(t *testing.T) {
	checkDump(t, "> quoted\nx", []Selection{Caret(10)}, []string{
		"line quote [0,8)",
		"hide [0,2)",
	})
	checkDump(t, "> quoted\nx", []Selection{Caret(0)}, []string{
		"line quote [0,8)",
	})
}

func TestBlockquoteNeedsContent(t *testing.T) {
	// A bare "> " is not a blockquote; it falls through as plain text.
	checkDump(t, "> ", nil, []string{})
}

func TestHorizontalRule(t *testing.T) {
	for _, text := range []string{"---", "***", "___", " --- "} {
		doc := text + "\nx"
		end := len(text)
		checkDump(t, doc, []Selection{Caret(len(doc))}, []string{
			fmt.Sprintf("line rule [0,%d)", end),
			fmt.Sprintf("hide [0,%d)", end),
		})
		// Cursor on the line: plain raw text, not even a line tag.
		s := Build(NewDocument(doc), []Selection{Caret(1)})
		if s.Len() != 0 {
			t.Errorf("rule under cursor decorated: %q", dumpSet(s))
		}
	}
}

func TestListContinuesInline(t *testing.T) {
	checkDump(t, "- item *em*\nx", []Selection{Caret(13)}, []string{
		"line list [0,11)",
		"replace bullet(indent=0) [0,2)",
		"hide [7,8)",
		"mark italic [8,10)",
		"hide [10,11)",
	})
}

func TestIndentedListItem(t *testing.T) {
	checkDump(t, "  * deep\nx", []Selection{Caret(10)}, []string{
		"line list [0,8)",
		"replace bullet(indent=2) [0,4)",
	})
}

func TestListCursorOnLine(t *testing.T) {
	// Marker stays raw, the line tag stays, inline still applies where the
	// cursor does not touch the match.
	checkDump(t, "- item *em*", []Selection{Caret(2)}, []string{
		"line list [0,11)",
		"hide [7,8)",
		"mark italic [8,10)",
		"hide [10,11)",
	})
}

func TestBoldItalic(t *testing.T) {
	checkDump(t, "***x***\ny", []Selection{Caret(9)}, []string{
		"hide [0,3)",
		"mark bold-italic [3,4)",
		"hide [4,7)",
	})
}

func TestUnderscoreBold(t *testing.T) {
	checkDump(t, "__x__\ny", []Selection{Caret(7)}, []string{
		"hide [0,2)",
		"mark bold [2,3)",
		"hide [3,5)",
	})
}

func TestStrikethrough(t *testing.T) {
	checkDump(t, "~~x~~\ny", []Selection{Caret(7)}, []string{
		"hide [0,2)",
		"mark strike [2,3)",
		"hide [3,5)",
	})
}

func TestInlineCode(t *testing.T) {
	checkDump(t, "`x`\ny", []Selection{Caret(5)}, []string{
		"hide [0,1)",
		"mark code [1,2)",
		"hide [2,3)",
	})
}

func TestLink(t *testing.T) {
	checkDump(t, "[go](https://go.dev)\nx", []Selection{Caret(22)}, []string{
		"hide [0,1)",
		"mark link [1,3)",
		"hide [3,20)",
	})
}

func TestSimpleItalic(t *testing.T) {
	checkDump(t, "a *b* c\nx", []Selection{Caret(9)}, []string{
		"hide [2,3)",
		"mark italic [3,4)",
		"hide [4,5)",
	})
}

func TestItalicAfterBold(t *testing.T) {
	// The italic pattern's first two candidates ("*bold*" and the
	// delimiter pair spanning the gap) are rejected; the genuine italics
	// after them must still decorate.
	checkDump(t, "**bold** *it*", nil, []string{
		"hide [0,2)",
		"mark bold [2,6)",
		"hide [6,8)",
		"hide [9,10)",
		"mark italic [10,12)",
		"hide [12,13)",
	})
}

func TestImageWinsOverLink(t *testing.T) {
	// The image markup must never also fire as a link; a real link later
	// on the line still does.
	checkDump(t, "![pic](p.png) and [go](u)", nil, []string{
		"hide [0,13)",
		"insert image(url=p.png, alt=pic) at 13",
		"hide [18,19)",
		"mark link [19,21)",
		"hide [21,25)",
	})
}

func TestMultiCursor(t *testing.T) {
	// First cursor sits in the first bold span, so only that one shows its
	// delimiters; the second span hides as usual.
	checkDump(t, "**a** **b**", []Selection{Caret(2), Caret(20)}, []string{
		"mark bold [2,3)",
		"hide [6,8)",
		"mark bold [8,9)",
		"hide [9,11)",
	})
}

const mixedDoc = "# Title\n" +
	"\n" +
	"Some **bold** and `code` here.\n" +
	"- first *item*\n" +
	"> a quote\n" +
	"```go\n" +
	"x := 1\n" +
	"```\n" +
	"---\n" +
	"![pic](http://h/p.png) and [a link](http://h)\n"

func TestBuildIsPure(t *testing.T) {
	doc := NewDocument(mixedDoc)
	sels := []Selection{Caret(3), {From: 20, To: 26}}

	a := Build(doc, sels)
	b := Build(doc, sels)
	if !reflect.DeepEqual(dumpSet(a), dumpSet(b)) {
		t.Errorf("identical inputs produced different sets:\n%q\n%q", dumpSet(a), dumpSet(b))
	}
}

func TestSetIsSorted(t *testing.T) {
	for _, sels := range [][]Selection{nil, {Caret(0)}, {Caret(12), Caret(60)}} {
		s := Build(NewDocument(mixedDoc), sels)
		decos := s.Decorations()
		for i := 1; i < len(decos); i++ {
			if decos[i].From < decos[i-1].From {
				t.Fatalf("sels %v: decoration %d starts at %d, before previous %d",
					sels, i, decos[i].From, decos[i-1].From)
			}
		}
	}
}

func TestFenceLanguage(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"```go", "go"},
		{"```", ""},
		{"```c++", "c++"},
		{"not a fence", ""},
		{" ```go", ""}, // must anchor at column 0
	}
	for _, tc := range cases {
		if got := FenceLanguage(tc.line); got != tc.want {
			t.Errorf("FenceLanguage(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}
