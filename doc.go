// Package htmldiff computes structural differences between two parsed HTML
// documents.
//
// Both documents are walked in parallel, pairing up significant child nodes
// position by position. Comments and whitespace-only text nodes are skipped
// before pairing, so formatting noise on one side never misaligns the two
// trees. Each mismatch is reported as a Difference annotated with a
// tag[index] path locating it; once a pair is reported as mismatched, its
// subtree is not descended into, keeping the output proportional to the
// structural drift rather than the size of the divergent subtrees.
//
//	diffs, err := htmldiff.CompareHTML(
//		`<div><p>hello</p></div>`,
//		`<div><span>hello</span></div>`,
//	)
//	// one difference: `div[0]: [node-name] expected <p>, found <span>`
//
// Trees produced by golang.org/x/net/html are consumed read-only; the
// returned Difference values carry their own snapshots and stay valid after
// the trees are discarded.
package htmldiff
