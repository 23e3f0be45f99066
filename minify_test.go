package htmldiff

import "testing"

func TestMinifyHTML(t *testing.T) {
	got := minifyHTML("<p>a  b</p>")
	if got != "<p>a b</p>" {
		t.Errorf("minifyHTML() = %q, want %q", got, "<p>a b</p>")
	}
}

func TestCompareHTMLWithMinify(t *testing.T) {
	first := "<p>a  b</p>"
	second := "<p>a b</p>"

	diffs := mustCompare(t, first, second)
	if len(diffs) != 1 || !diffs[0].IsNodeText() {
		t.Fatalf("without minify: got %v, want one NodeText difference", diffs)
	}

	diffs = mustCompare(t, first, second, WithMinify())
	if len(diffs) != 0 {
		t.Errorf("with minify: got %v, want no differences", diffs)
	}
}
