// Package transform provides the built-in text transformations applied to
// clipboard-sized pieces of text: formatters, minifiers, and converters.
// Every transform is pure; input that cannot be transformed comes back as an
// error, never as partial output.
package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"mvdan.cc/sh/v3/syntax"
)

// Func applies one transformation to text.
type Func func(string) (string, error)

// Transform is a named text transformation.
type Transform struct {
	Name  string
	Desc  string
	Apply Func
}

// registry holds the built-in transforms in display order.
var registry = []Transform{
	{"json", "pretty-print JSON", FormatJSON},
	{"json-min", "minify JSON", MinifyJSON},
	{"go", "format Go source (gofmt)", FormatGo},
	{"shell", "format a shell script", FormatShell},
	{"md-html", "render markdown as GFM HTML", MarkdownToHTML},
	{"text", "strip HTML tags, keep text", StripHTML},
	{"js-strip", "remove JS comments", StripJSComments},
	{"css-strip", "remove CSS comments", StripCSSComments},
	{"xml-min", "minify XML", MinifyXML},
}

// All returns the built-in transforms.
func All() []Transform { return registry }

// Lookup finds a transform by name.
func Lookup(name string) (Transform, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Transform{}, false
}

// FormatJSON pretty-prints JSON with two-space indentation.
func FormatJSON(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// MinifyJSON removes all insignificant whitespace from JSON.
func MinifyJSON(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// FormatGo formats Go source the way gofmt does.
func FormatGo(text string) (string, error) {
	out, err := format.Source([]byte(text))
	if err != nil {
		return "", fmt.Errorf("format Go: %w", err)
	}
	return string(out), nil
}

// FormatShell parses and reprints a shell script with two-space indentation.
func FormatShell(text string) (string, error) {
	f, err := syntax.NewParser(syntax.KeepComments(true)).Parse(strings.NewReader(text), "")
	if err != nil {
		return "", fmt.Errorf("parse shell: %w", err)
	}
	var buf bytes.Buffer
	if err := syntax.NewPrinter(syntax.Indent(2)).Print(&buf, f); err != nil {
		return "", fmt.Errorf("print shell: %w", err)
	}
	return buf.String(), nil
}

// MarkdownToHTML renders markdown (with GFM extensions, so strikethrough and
// tables work) as HTML.
func MarkdownToHTML(text string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
