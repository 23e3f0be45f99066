package htmldiff

import (
	"testing"

	"golang.org/x/net/html"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantChildren int
	}{
		{
			name:         "single element",
			input:        "<div><p>x</p></div>",
			wantChildren: 1,
		},
		{
			name:         "multiple top-level elements",
			input:        "<div>x</div><p>y</p>",
			wantChildren: 2,
		},
		{
			name:         "empty input",
			input:        "",
			wantChildren: 0,
		},
		{
			name:         "whitespace only",
			input:        "  \n\t ",
			wantChildren: 0,
		},
		{
			name:         "bare text",
			input:        "hello",
			wantChildren: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseFragment(tt.input)
			if err != nil {
				t.Fatalf("ParseFragment() error = %v", err)
			}
			if root.Type != html.DocumentNode {
				t.Errorf("root type = %v, want DocumentNode", root.Type)
			}
			if got := len(significantChildren(root)); got != tt.wantChildren {
				t.Errorf("significant children = %d, want %d", got, tt.wantChildren)
			}
		})
	}
}

func TestParseFragmentStripsWrappers(t *testing.T) {
	root, err := ParseFragment("<div></div>")
	if err != nil {
		t.Fatalf("ParseFragment() error = %v", err)
	}
	children := significantChildren(root)
	if len(children) != 1 || children[0].Data != "div" {
		t.Fatalf("children = %v, want just the div", children)
	}
	// The synthesized html/head/body wrappers must not show up in paths.
	diffs, err := Compare(root, mustParseFragment(t, "<span></span>"))
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(diffs) != 1 || diffs[0].Path() != "" {
		t.Errorf("top-level mismatch path = %q, want empty", diffs[0].Path())
	}
}

func TestParseBestEffort(t *testing.T) {
	// Malformed markup still yields a tree, never an error.
	doc, err := Parse("<div><p>unclosed")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Type != html.DocumentNode {
		t.Errorf("doc type = %v, want DocumentNode", doc.Type)
	}
}

func mustParseFragment(t *testing.T, input string) *html.Node {
	t.Helper()
	root, err := ParseFragment(input)
	if err != nil {
		t.Fatalf("ParseFragment(%q) error = %v", input, err)
	}
	return root
}
