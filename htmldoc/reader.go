// Package htmldoc extracts visible text from saved HTML pages.
//
// Dossier sources are occasionally web pages saved to disk rather than
// PDF or DOCX documents. The reader walks the parse tree, skips script,
// style and head content, and returns one line per text node. Lines are
// filtered with the shared segment cleaner by the caller, the same way
// converted DOCX output is.
package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skippedElements are elements whose text content is never visible prose.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"template": true,
}

// Extract parses HTML and returns the visible text lines in document
// order. Whitespace-only nodes are dropped; no plausibility filtering is
// applied here.
func Extract(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if line := strings.Join(strings.Fields(n.Data), " "); line != "" {
				lines = append(lines, line)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return lines, nil
}

// ExtractString is a convenience wrapper over Extract for in-memory documents.
func ExtractString(doc string) ([]string, error) {
	return Extract(strings.NewReader(doc))
}
