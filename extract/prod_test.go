package extract

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/doclift/doclift/dom"
	"github.com/doclift/doclift/ir"
)

func prodLeaf(key, label, summary string) *dom.Element {
	return dom.New("div", "field-item").Add(
		dom.New("span", "field-key").WithText(key),
		dom.New("span", "field-type").WithText(label),
		dom.New("span", "field-summary").WithText(summary),
	)
}

func prodContainer(key, label string) *dom.Element {
	return dom.New("div", "field-item").Add(
		dom.New("span", "field-key").WithText(key),
		dom.New("span", "field-type").WithText(label),
	)
}

func mustJSON(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestFromProduction(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *dom.Element
		expected string
	}{
		{
			name: "leaf fields",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodLeaf("name", "(string)", `"Ada"`),
					prodLeaf("age", "(number)", "36"),
					prodLeaf("active", "(boolean)", "true"),
					prodLeaf("note", "(null)", "null"),
				)
			},
			expected: `{"name":"Ada","age":36,"active":true,"note":null}`,
		},
		{
			name: "nested map",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodContainer("address", "(map)"),
					dom.New("div", "field-children").Add(
						prodLeaf("city", "(string)", `"Oslo"`),
						prodLeaf("zip", "(string)", `"0150"`),
					),
				)
			},
			expected: `{"address":{"city":"Oslo","zip":"0150"}}`,
		},
		{
			name: "array out of order with gap",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodContainer("tags", "(array)"),
					dom.New("div", "field-children").Add(
						prodLeaf("2", "(string)", `"c"`),
						prodLeaf("0", "(string)", `"a"`),
					),
				)
			},
			expected: `{"tags":["a",null,"c"]}`,
		},
		{
			name: "container without children sibling",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodContainer("empty", "(map)"),
					prodLeaf("next", "(string)", `"x"`),
				)
			},
			expected: `{"empty":{},"next":"x"}`,
		},
		{
			name: "duplicate keys last write wins",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodLeaf("k", "(string)", `"first"`),
					prodLeaf("other", "(number)", "1"),
					prodLeaf("k", "(string)", `"second"`),
				)
			},
			expected: `{"k":"second","other":1}`,
		},
		{
			name: "row without key is skipped",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					dom.New("div", "field-item").Add(
						dom.New("span", "field-type").WithText("(string)"),
						dom.New("span", "field-summary").WithText(`"orphan"`),
					),
					prodLeaf("kept", "(string)", `"yes"`),
				)
			},
			expected: `{"kept":"yes"}`,
		},
		{
			name: "summary title attribute preferred",
			build: func() *dom.Element {
				item := dom.New("div", "field-item").Add(
					dom.New("span", "field-key").WithText("body"),
					dom.New("span", "field-type").WithText("(string)"),
					dom.New("span", "field-summary").
						WithAttr("title", `"full text"`).
						WithText(`"full…"`),
				)
				return dom.New("div", "panel-document").Add(item)
			},
			expected: `{"body":"full text"}`,
		},
		{
			name: "opaque type label reads as raw text",
			build: func() *dom.Element {
				return dom.New("div", "panel-document").Add(
					prodLeaf("created", "(timestamp)", "August 30, 2026 at 10:00:00 AM"),
				)
			},
			expected: `{"created":"August 30, 2026 at 10:00:00 AM"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustJSON(t, FromProduction(tt.build()))
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestFromProductionUncoercibleNumber(t *testing.T) {
	view := dom.New("div", "panel-document").Add(
		prodLeaf("n", "(number)", "not a number"),
	)
	obj := FromProduction(view)
	n := ir.Get(obj, "n")
	if n == nil || n.Type != ir.NumberType {
		t.Fatalf("expected number node, got %v", n)
	}
	if n.Float64 == nil || !math.IsNaN(*n.Float64) {
		t.Errorf("expected NaN sentinel, got %v", n.Float64)
	}
	if got := mustJSON(t, obj); got != `{"n":null}` {
		t.Errorf("got %s, want {\"n\":null}", got)
	}
}

func TestProductionRoot(t *testing.T) {
	root := dom.New("div", "panel-document")
	view := dom.New("div").Add(dom.New("div").Add(root))
	if got := ProductionRoot(view); got != root {
		t.Errorf("expected nested root, got %v", got)
	}
	if got := ProductionRoot(root); got != root {
		t.Errorf("expected self, got %v", got)
	}
	if got := ProductionRoot(dom.New("div")); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
