package transform

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	if _, ok := Lookup("json"); !ok {
		t.Error("json transform missing")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("unknown transform should miss")
	}
	if len(All()) == 0 {
		t.Error("registry is empty")
	}
}

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON(`{"a":1,"b":[2,3]}`)
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := FormatJSON("{nope"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestMinifyJSON(t *testing.T) {
	got, err := MinifyJSON("{\n  \"a\": 1\n}")
	if err != nil {
		t.Fatalf("MinifyJSON: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("got %q", got)
	}
}

func TestFormatGo(t *testing.T) {
	got, err := FormatGo("package x\nfunc  f( ) { }\n")
	if err != nil {
		t.Fatalf("FormatGo: %v", err)
	}
	if !strings.Contains(got, "func f()") {
		t.Errorf("not formatted: %q", got)
	}

	if _, err := FormatGo("not go at all"); err == nil {
		t.Error("expected error for invalid Go")
	}
}

func TestFormatShell(t *testing.T) {
	got, err := FormatShell("if true;   then\necho hi;fi\n")
	if err != nil {
		t.Fatalf("FormatShell: %v", err)
	}
	if !strings.Contains(got, "if true; then") {
		t.Errorf("not formatted: %q", got)
	}
}

func TestMarkdownToHTML(t *testing.T) {
	got, err := MarkdownToHTML("# Hi\n\nsome ~~old~~ **new** text\n")
	if err != nil {
		t.Fatalf("MarkdownToHTML: %v", err)
	}
	for _, want := range []string{"<h1>", "<del>old</del>", "<strong>new</strong>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStripHTML(t *testing.T) {
	got, err := StripHTML(`<html><head><style>p{}</style></head>
<body><p>Hello <b>world</b></p><script>x()</script><p>bye</p></body></html>`)
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}
	if !strings.Contains(got, "Hello world") || !strings.Contains(got, "bye") {
		t.Errorf("text lost: %q", got)
	}
	if strings.Contains(got, "x()") || strings.Contains(got, "p{}") {
		t.Errorf("script/style leaked: %q", got)
	}
}

func TestStripJSComments(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a // trailing\nb", "a \nb"},
		{"a /* block */ b", "a   b"},
		{`s = "// not a comment"`, `s = "// not a comment"`},
		{"s = `/* keep */`", "s = `/* keep */`"},
		{`s = "\" // still string"`, `s = "\" // still string"`},
	}
	for _, tc := range cases {
		got, err := StripJSComments(tc.in)
		if err != nil {
			t.Fatalf("StripJSComments(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("StripJSComments(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripCSSComments(t *testing.T) {
	got, err := StripCSSComments("a { /* red */ color: blue; }")
	if err != nil {
		t.Fatalf("StripCSSComments: %v", err)
	}
	if strings.Contains(got, "red") || !strings.Contains(got, "color: blue") {
		t.Errorf("got %q", got)
	}
}

func TestMinifyXML(t *testing.T) {
	got, err := MinifyXML("<a>\n  <b attr=\"x y\">text here</b>\n  <!-- gone -->\n</a>")
	if err != nil {
		t.Fatalf("MinifyXML: %v", err)
	}
	want := `<a><b attr="x y">texthere</b></a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
