package decor

import "testing"

func TestNewDocumentOffsets(t *testing.T) {
	d := NewDocument("abc\nde\n\nf")

	if got := d.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}
	want := []Line{
		{Num: 1, Start: 0, Text: "abc"},
		{Num: 2, Start: 4, Text: "de"},
		{Num: 3, Start: 7, Text: ""},
		{Num: 4, Start: 8, Text: "f"},
	}
	for i, w := range want {
		if got := d.Line(i + 1); got != w {
			t.Errorf("Line(%d) = %+v, want %+v", i+1, got, w)
		}
	}
	if got := d.Line(2).End(); got != 6 {
		t.Errorf("Line(2).End() = %d, want 6", got)
	}
}

func TestEmptyDocument(t *testing.T) {
	d := NewDocument("")
	if got := d.LineCount(); got != 1 {
		t.Fatalf("LineCount() = %d, want 1", got)
	}
	if got := d.Line(1); got.Text != "" || got.Start != 0 {
		t.Errorf("Line(1) = %+v, want empty line at 0", got)
	}
	if s := Build(d, nil); s.Len() != 0 {
		t.Errorf("Build on empty document produced %d decorations", s.Len())
	}
}

func TestLineAt(t *testing.T) {
	d := NewDocument("abc\nde\nf")
	cases := []struct {
		off  int
		want int // line number
	}{
		{0, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {99, 3},
	}
	for _, tc := range cases {
		if got := d.LineAt(tc.off).Num; got != tc.want {
			t.Errorf("LineAt(%d).Num = %d, want %d", tc.off, got, tc.want)
		}
	}
}

func TestLineClamping(t *testing.T) {
	d := NewDocument("a\nb")
	if got := d.Line(0).Num; got != 1 {
		t.Errorf("Line(0).Num = %d, want 1", got)
	}
	if got := d.Line(99).Num; got != 2 {
		t.Errorf("Line(99).Num = %d, want 2", got)
	}
}
