package htmldiff

import (
	"bytes"

	"golang.org/x/net/html"
)

// renderNode serializes a node back to markup for use in difference
// messages. Text nodes yield their raw content.
func renderNode(n *html.Node) string {
	if n == nil {
		return ""
	}
	if isText(n) {
		return n.Data
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return n.Data
	}
	return buf.String()
}
