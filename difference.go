package htmldiff

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a single reported difference.
type Kind string

const (
	// NodeType marks a pair holding different node kinds (element vs text).
	NodeType Kind = "node-type"
	// NodeName marks two elements with different tag names.
	NodeName Kind = "node-name"
	// NodeAttributes marks two same-named elements whose attribute sets differ.
	NodeAttributes Kind = "node-attributes"
	// NodeText marks two text nodes with unequal content.
	NodeText Kind = "node-text"
	// NotPresent marks a position where only one side has a sibling.
	NotPresent Kind = "not-present"
)

// ElementInformation is a snapshot of one node taken at diff time. It stays
// valid after the parsed trees are discarded.
type ElementInformation struct {
	// Name is the tag name, empty for nodes without one (e.g. text).
	Name string
	// Content is the serialized markup of the node, or the raw string for a
	// text node.
	Content string
	// Path locates the node under the document root as "/"-joined tag[index]
	// segments; the index counts previously matched element siblings at each
	// level. Empty for top-level nodes.
	Path string
}

// Difference is one reported mismatch between the two documents. Elem always
// describes the first document's side and OppositeElem the second's; only the
// fields relevant to Kind are populated. For NotPresent exactly one of
// Elem/OppositeElem is non-nil.
type Difference struct {
	Kind Kind

	Elem         *ElementInformation
	OppositeElem *ElementInformation

	// Attribute snapshots of both sides, set for NodeAttributes.
	ElemAttributes         map[string]string
	OppositeElemAttributes map[string]string

	// Text payloads of both sides, set for NodeText.
	ElemText         string
	OppositeElemText string
}

// IsNodeType reports whether the two sides held different node kinds.
func (d Difference) IsNodeType() bool { return d.Kind == NodeType }

// IsNodeName reports whether the two sides were elements with different tags.
func (d Difference) IsNodeName() bool { return d.Kind == NodeName }

// IsNodeAttributes reports whether the two sides' attribute sets differed.
func (d Difference) IsNodeAttributes() bool { return d.Kind == NodeAttributes }

// IsNodeText reports whether the two sides were text nodes with unequal
// content.
func (d Difference) IsNodeText() bool { return d.Kind == NodeText }

// IsNotPresent reports whether only one side had a node at this position.
func (d Difference) IsNotPresent() bool { return d.Kind == NotPresent }

// Path returns the location of the difference. Both sides share the same
// path, so whichever side is populated provides it.
func (d Difference) Path() string {
	switch {
	case d.Elem != nil:
		return d.Elem.Path
	case d.OppositeElem != nil:
		return d.OppositeElem.Path
	}
	return ""
}

// String renders the difference as a single human-readable line.
func (d Difference) String() string {
	loc := d.Path()
	if loc == "" {
		loc = "/"
	}
	switch d.Kind {
	case NodeType:
		return fmt.Sprintf("%s: [node-type] expected %q, found %q",
			loc, d.Elem.Content, d.OppositeElem.Content)
	case NodeName:
		return fmt.Sprintf("%s: [node-name] expected <%s>, found <%s>",
			loc, d.Elem.Name, d.OppositeElem.Name)
	case NodeAttributes:
		return fmt.Sprintf("%s: [node-attributes] expected %s, found %s",
			loc,
			formatElement(d.Elem.Name, d.ElemAttributes),
			formatElement(d.OppositeElem.Name, d.OppositeElemAttributes))
	case NodeText:
		return fmt.Sprintf("%s: [node-text] expected %q, found %q",
			loc, d.ElemText, d.OppositeElemText)
	case NotPresent:
		if d.Elem != nil {
			return fmt.Sprintf("%s: [not-present] missing %q", loc, d.Elem.Content)
		}
		return fmt.Sprintf("%s: [not-present] unexpected %q", loc, d.OppositeElem.Content)
	}
	return fmt.Sprintf("%s: [unknown]", loc)
}

// formatElement renders a start tag with its attributes in sorted key order
// so message output is deterministic.
func formatElement(name string, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, attrs[k])
	}
	b.WriteString(">")
	return b.String()
}
