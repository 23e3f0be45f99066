package htmldiff

import (
	"strings"

	"golang.org/x/net/html"
)

// significant reports whether a node takes part in comparison. Comments and
// whitespace-only text nodes never do.
func significant(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode:
		return false
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	}
	return true
}

// significantChildren collects the children of n that take part in
// comparison, in document order.
func significantChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if significant(c) {
			children = append(children, c)
		}
	}
	return children
}

// attributes snapshots an element's attributes into a map. Keys are unique
// per the parser's contract; order is irrelevant to comparison.
func attributes(n *html.Node) map[string]string {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func isElement(n *html.Node) bool { return n.Type == html.ElementNode }

func isText(n *html.Node) bool { return n.Type == html.TextNode }
