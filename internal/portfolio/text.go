package portfolio

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText strips any HTML markup from user-authored content before it is
// rendered into the document. Plain input passes through unchanged apart
// from surrounding whitespace.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var text strings.Builder
	collectText(doc, &text)
	return strings.TrimSpace(text.String())
}

// collectText recursively extracts text content from HTML nodes
func collectText(n *html.Node, out *strings.Builder) {
	if n.Type == html.TextNode {
		out.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}
