package htmldiff

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrMaxDepth is returned when a comparison descends past the configured
// depth limit. See WithMaxDepth.
var ErrMaxDepth = errors.New("htmldiff: maximum tree depth exceeded")

// Compare walks the children of a and b in parallel and returns every
// structural difference between the two trees, in document order. A reported
// mismatch stops descent into that pair's subtree; siblings at the same
// level are still compared. Both trees are read-only for the duration of
// the call, and the returned differences remain valid after the trees are
// discarded.
func Compare(a, b *html.Node, opts ...Option) ([]Difference, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &walker{maxDepth: cfg.maxDepth}
	return w.compareChildren(a, b, 0)
}

// CompareHTML parses both fragments and compares the resulting trees.
func CompareHTML(a, b string, opts ...Option) ([]Difference, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minify {
		a = minifyHTML(a)
		b = minifyHTML(b)
	}
	na, err := ParseFragment(a)
	if err != nil {
		return nil, fmt.Errorf("first document: %w", err)
	}
	nb, err := ParseFragment(b)
	if err != nil {
		return nil, fmt.Errorf("second document: %w", err)
	}
	return Compare(na, nb, opts...)
}

// walker carries the per-traversal state: the ancestor path and the depth
// limit. Each Compare call owns its own walker, so concurrent comparisons of
// independent tree pairs never interact.
type walker struct {
	maxDepth int
	path     pathTracker
}

// compareChildren pairs up the significant children of a and b position by
// position and classifies each pair. Matched element pairs are descended
// into with a tag[pos] segment pushed around the recursion; pos counts only
// matched element siblings, so mismatched or one-sided positions never
// consume an index.
func (w *walker) compareChildren(a, b *html.Node, depth int) ([]Difference, error) {
	if depth > w.maxDepth {
		return nil, ErrMaxDepth
	}

	left := significantChildren(a)
	right := significantChildren(b)

	var diffs []Difference
	pos := 0
	for i := 0; i < len(left) || i < len(right); i++ {
		var n1, n2 *html.Node
		if i < len(left) {
			n1 = left[i]
		}
		if i < len(right) {
			n2 = right[i]
		}

		switch {
		case n2 == nil:
			diffs = append(diffs, Difference{Kind: NotPresent, Elem: w.describe(n1)})
		case n1 == nil:
			diffs = append(diffs, Difference{Kind: NotPresent, OppositeElem: w.describe(n2)})
		case isElement(n1) && isElement(n2):
			if d, ok := w.compareElements(n1, n2); !ok {
				// Short-circuit: no descent below a reported mismatch.
				diffs = append(diffs, d)
				continue
			}
			w.path.push(fmt.Sprintf("%s[%d]", n1.Data, pos))
			pos++
			sub, err := w.compareChildren(n1, n2, depth+1)
			w.path.pop()
			if err != nil {
				return nil, err
			}
			diffs = append(diffs, sub...)
		case isText(n1) && isText(n2):
			if n1.Data != n2.Data {
				diffs = append(diffs, Difference{
					Kind:             NodeText,
					Elem:             w.describe(n1),
					OppositeElem:     w.describe(n2),
					ElemText:         n1.Data,
					OppositeElemText: n2.Data,
				})
			}
		case !isElement(n1) && !isText(n1) && !isElement(n2) && !isText(n2):
			// Neither side is an element or text (doctypes and the like);
			// such pairs compare equal by fiat.
		default:
			diffs = append(diffs, Difference{
				Kind:         NodeType,
				Elem:         w.describe(n1),
				OppositeElem: w.describe(n2),
			})
		}
	}
	return diffs, nil
}

// compareElements checks a same-position element pair, tag name first, then
// the attribute sets. ok is false when a difference was found; the caller
// must not descend into the pair in that case.
func (w *walker) compareElements(n1, n2 *html.Node) (Difference, bool) {
	if n1.Data != n2.Data {
		return Difference{
			Kind:         NodeName,
			Elem:         w.describe(n1),
			OppositeElem: w.describe(n2),
		}, false
	}
	a1, a2 := attributes(n1), attributes(n2)
	if !equalAttributes(a1, a2) {
		return Difference{
			Kind:                   NodeAttributes,
			Elem:                   w.describe(n1),
			OppositeElem:           w.describe(n2),
			ElemAttributes:         a1,
			OppositeElemAttributes: a2,
		}, false
	}
	return Difference{}, true
}

// equalAttributes is a symmetric size+membership check. Any mismatch
// anywhere in the set yields one combined NodeAttributes record upstream,
// not one record per attribute.
func equalAttributes(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if other, ok := b[k]; !ok || other != v {
			return false
		}
	}
	return true
}

// describe snapshots a node for embedding in a Difference. Snapshots own
// their strings outright so they outlive the parsed trees.
func (w *walker) describe(n *html.Node) *ElementInformation {
	info := &ElementInformation{
		Content: renderNode(n),
		Path:    w.path.String(),
	}
	if isElement(n) {
		info.Name = n.Data
	}
	return info
}
