package htmldiff

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parse converts a full HTML document into a tree for comparison. Malformed
// markup yields a best-effort tree rather than an error, per the parser's
// contract.
func Parse(htmlContent string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// ParseFragment parses an HTML fragment and returns a synthetic document
// root whose children are the fragment's top-level nodes. The html/head/body
// wrappers that html.ParseFragment synthesizes are stripped so difference
// paths start at the fragment's own elements.
func ParseFragment(htmlContent string) (*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(htmlContent), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, node := range nodes {
		for _, top := range unwrap(node) {
			detach(top)
			root.AppendChild(top)
		}
	}
	return root, nil
}

// unwrap strips the html/head/body wrapper elements around fragment content.
// Fragments never carry meaningful head content, so head is dropped.
func unwrap(n *html.Node) []*html.Node {
	if n.Type == html.ElementNode && n.Data == "html" {
		var result []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.ElementNode && c.Data == "body":
				for bc := c.FirstChild; bc != nil; bc = bc.NextSibling {
					result = append(result, bc)
				}
			case c.Type == html.ElementNode && c.Data == "head":
				continue
			default:
				result = append(result, c)
			}
		}
		return result
	}

	if n.Type == html.ElementNode && n.Data == "body" {
		var result []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			result = append(result, c)
		}
		return result
	}

	return []*html.Node{n}
}

// detach removes a node from its current parent so it can be reparented
// under the synthetic root.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
