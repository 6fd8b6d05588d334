package transform

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML parses HTML and returns its visible text content, with block
// elements separated by newlines. Script and style bodies are dropped.
func StripHTML(text string) (string, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			case "br":
				b.WriteByte('\n')
			}
		case html.TextNode:
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlockElement(n.Data) {
			b.WriteByte('\n')
		}
	}
	walk(doc)

	return collapseBlankLines(b.String()), nil
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "blockquote", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// collapseBlankLines trims each line and folds runs of blank lines into one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := true // leading blanks dropped
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, l)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// StripJSComments removes // and /* */ comments from JavaScript-ish source
// while leaving string and template literals intact.
func StripJSComments(text string) (string, error) {
	var b strings.Builder
	var inString bool
	var stringChar byte

	for i := 0; i < len(text); {
		ch := text[i]

		// Escape sequences inside strings pass through unexamined.
		if inString && ch == '\\' && i+1 < len(text) {
			b.WriteByte(ch)
			b.WriteByte(text[i+1])
			i += 2
			continue
		}

		if ch == '"' || ch == '\'' || ch == '`' {
			if !inString {
				inString = true
				stringChar = ch
			} else if ch == stringChar {
				inString = false
			}
			b.WriteByte(ch)
			i++
			continue
		}

		if inString {
			b.WriteByte(ch)
			i++
			continue
		}

		if ch == '/' && i+1 < len(text) && text[i+1] == '/' {
			i += 2
			for i < len(text) && text[i] != '\n' {
				i++
			}
			continue // the newline itself is kept by the next iteration
		}

		if ch == '/' && i+1 < len(text) && text[i+1] == '*' {
			i += 2
			for i+1 < len(text) && !(text[i] == '*' && text[i+1] == '/') {
				i++
			}
			if i+1 < len(text) {
				i += 2
			} else {
				i = len(text)
			}
			// A space avoids joining the surrounding tokens.
			b.WriteByte(' ')
			continue
		}

		b.WriteByte(ch)
		i++
	}

	return b.String(), nil
}

// StripCSSComments removes /* */ comments from CSS.
func StripCSSComments(text string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '/' && i+1 < len(text) && text[i+1] == '*' {
			i += 2
			for i+1 < len(text) && !(text[i] == '*' && text[i+1] == '/') {
				i++
			}
			if i+1 < len(text) {
				i += 2
			} else {
				i = len(text)
			}
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String(), nil
}

// MinifyXML drops comments and all whitespace between tags.
func MinifyXML(text string) (string, error) {
	var b strings.Builder
	inTag := false
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "<!--") {
			end := strings.Index(text[i+4:], "-->")
			if end < 0 {
				i = len(text)
				continue
			}
			i += 4 + end + 3
			continue
		}
		ch := text[i]
		switch {
		case ch == '<':
			inTag = true
			b.WriteByte(ch)
		case ch == '>':
			inTag = false
			b.WriteByte(ch)
		case inTag:
			b.WriteByte(ch)
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			// dropped between tags
		default:
			b.WriteByte(ch)
		}
		i++
	}
	return b.String(), nil
}
