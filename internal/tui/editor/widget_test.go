package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/livemark/internal/decor"
)

func TestRenderBulletIndent(t *testing.T) {
	th := testTheme()
	cases := []struct {
		indent int
		want   string
	}{
		{0, "• "},
		{2, "  • "},
		{4, "    • "},
	}
	for _, tc := range cases {
		got := ansi.Strip(renderWidget(&decor.Widget{Kind: decor.BulletWidget, Indent: tc.indent}, th))
		if got != tc.want {
			t.Errorf("indent %d: got %q, want %q", tc.indent, got, tc.want)
		}
	}
}

func TestRenderImage(t *testing.T) {
	th := testTheme()
	w := &decor.Widget{Kind: decor.ImageWidget, URL: "https://example.com/a.png", Alt: "diagram"}
	out := renderWidget(w, th)
	if !strings.Contains(out, "diagram") {
		t.Errorf("image render %q missing alt text", out)
	}
	if !strings.Contains(out, "\x1b]8;;https://example.com/a.png") {
		t.Errorf("image render %q missing hyperlink", out)
	}
}

func TestRenderImageBadURL(t *testing.T) {
	th := testTheme()
	cases := []string{
		"://missing-scheme",
		"javascript:alert(1)",
		"notaurl",
	}
	for _, u := range cases {
		w := &decor.Widget{Kind: decor.ImageWidget, URL: u, Alt: "x"}
		if got := renderWidget(w, th); got != "" {
			t.Errorf("URL %q: rendered %q, want nothing", u, got)
		}
	}
}

func TestRenderImageDisabled(t *testing.T) {
	th := NewTheme("monokai", false)
	w := &decor.Widget{Kind: decor.ImageWidget, URL: "https://example.com/a.png", Alt: "x"}
	if got := renderWidget(w, th); got != "" {
		t.Errorf("images disabled: rendered %q, want nothing", got)
	}
}

func TestRenderEmptyFence(t *testing.T) {
	th := testTheme()
	if got := renderWidget(&decor.Widget{Kind: decor.EmptyFenceWidget}, th); got != "" {
		t.Errorf("empty fence rendered %q", got)
	}
}

func TestRenderNilWidget(t *testing.T) {
	if got := renderWidget(nil, testTheme()); got != "" {
		t.Errorf("nil widget rendered %q", got)
	}
}
