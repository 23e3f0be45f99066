package htmldiff

import (
	"testing"
)

func TestDifferenceString(t *testing.T) {
	tests := []struct {
		name string
		diff Difference
		want string
	}{
		{
			name: "node type",
			diff: Difference{
				Kind:         NodeType,
				Elem:         &ElementInformation{Name: "span", Content: "<span></span>", Path: "div[0]"},
				OppositeElem: &ElementInformation{Content: "text", Path: "div[0]"},
			},
			want: `div[0]: [node-type] expected "<span></span>", found "text"`,
		},
		{
			name: "node name",
			diff: Difference{
				Kind:         NodeName,
				Elem:         &ElementInformation{Name: "foo", Content: "<foo></foo>", Path: "div[0]"},
				OppositeElem: &ElementInformation{Name: "p", Content: "<p></p>", Path: "div[0]"},
			},
			want: "div[0]: [node-name] expected <foo>, found <p>",
		},
		{
			name: "node attributes sorts keys",
			diff: Difference{
				Kind:                   NodeAttributes,
				Elem:                   &ElementInformation{Name: "p", Path: "div[0]"},
				OppositeElem:           &ElementInformation{Name: "p", Path: "div[0]"},
				ElemAttributes:         map[string]string{"id": "x", "class": "old"},
				OppositeElemAttributes: map[string]string{"class": "new", "id": "x"},
			},
			want: `div[0]: [node-attributes] expected <p class="old" id="x">, found <p class="new" id="x">`,
		},
		{
			name: "node text",
			diff: Difference{
				Kind:             NodeText,
				Elem:             &ElementInformation{Content: "hello", Path: "p[0]"},
				OppositeElem:     &ElementInformation{Content: "world", Path: "p[0]"},
				ElemText:         "hello",
				OppositeElemText: "world",
			},
			want: `p[0]: [node-text] expected "hello", found "world"`,
		},
		{
			name: "missing node",
			diff: Difference{
				Kind: NotPresent,
				Elem: &ElementInformation{Name: "p", Content: "<p>x</p>", Path: "div[0]"},
			},
			want: `div[0]: [not-present] missing "<p>x</p>"`,
		},
		{
			name: "unexpected node",
			diff: Difference{
				Kind:         NotPresent,
				OppositeElem: &ElementInformation{Name: "p", Content: "<p>x</p>", Path: "div[0]"},
			},
			want: `div[0]: [not-present] unexpected "<p>x</p>"`,
		},
		{
			name: "top-level path renders as slash",
			diff: Difference{
				Kind: NotPresent,
				Elem: &ElementInformation{Name: "p", Content: "<p></p>", Path: ""},
			},
			want: `/: [not-present] missing "<p></p>"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diff.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDifferencePredicates(t *testing.T) {
	tests := []struct {
		kind Kind
		want func(Difference) bool
	}{
		{NodeType, Difference.IsNodeType},
		{NodeName, Difference.IsNodeName},
		{NodeAttributes, Difference.IsNodeAttributes},
		{NodeText, Difference.IsNodeText},
		{NotPresent, Difference.IsNotPresent},
	}

	kinds := []Kind{NodeType, NodeName, NodeAttributes, NodeText, NotPresent}
	for _, tt := range tests {
		for _, kind := range kinds {
			d := Difference{Kind: kind}
			if got := tt.want(d); got != (kind == tt.kind) {
				t.Errorf("predicate for %v on kind %v = %v", tt.kind, kind, got)
			}
		}
	}
}

func TestFormatElement(t *testing.T) {
	got := formatElement("div", map[string]string{"b": "2", "a": "1"})
	want := `<div a="1" b="2">`
	if got != want {
		t.Errorf("formatElement() = %q, want %q", got, want)
	}

	if got := formatElement("br", nil); got != "<br>" {
		t.Errorf("formatElement() = %q, want <br>", got)
	}
}
