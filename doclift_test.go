package doclift

import (
	"errors"
	"testing"

	"github.com/doclift/doclift/dom"
)

func prodView() *dom.Element {
	return dom.New("div").Add(
		dom.New("div", "panel-document").Add(
			dom.New("div", "field-item").Add(
				dom.New("span", "field-key").WithText("name"),
				dom.New("span", "field-type").WithText("(string)"),
				dom.New("span", "field-summary").WithText(`"Ada"`),
			),
		),
	)
}

func emuView(id string, scopes int) *dom.Element {
	view := dom.New("div")
	for i := 0; i < scopes; i++ {
		scope := dom.New("div", "panel-view")
		if id != "" {
			scope.Add(dom.New("div", "panel-header").Add(
				dom.New("span", "panel-label").WithText(id),
			))
		}
		scope.Add(dom.New("div", "tree").Add(
			dom.New("div", "tree-node").Add(
				dom.New("span", "node-key").WithText("depth"),
				dom.New("span", "node-value").WithText("0"),
			),
		))
		view.Add(scope)
	}
	return view
}

func TestAssembleProduction(t *testing.T) {
	doc, err := Assemble(prodView(), WithLocation("https://example.com/db/data/users/42?tab=data"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Frontend != ProductionFrontend {
		t.Errorf("frontend = %v", doc.Frontend)
	}
	if doc.ID != "42" {
		t.Errorf("id = %q, want 42", doc.ID)
	}
	if got := doc.JSON(); got != "{\n  \"42\": {\n    \"name\": \"Ada\"\n  }\n}" {
		t.Errorf("json = %q", got)
	}
}

func TestAssembleEmulator(t *testing.T) {
	doc, err := Assemble(emuView("user-7", 1))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Frontend != EmulatorFrontend {
		t.Errorf("frontend = %v", doc.Frontend)
	}
	if doc.ID != "user-7" {
		t.Errorf("id = %q, want user-7", doc.ID)
	}
}

func TestAssembleEmulatorPlaceholderID(t *testing.T) {
	doc, err := Assemble(emuView("", 1))
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != PlaceholderID {
		t.Errorf("id = %q, want %q", doc.ID, PlaceholderID)
	}
}

func TestAssemblePrefersProduction(t *testing.T) {
	view := dom.New("div").Add(emuView("emu", 1), prodView())
	doc, err := Assemble(view, WithLocation("/coll/doc-1"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Frontend != ProductionFrontend {
		t.Errorf("frontend = %v, want production", doc.Frontend)
	}
}

func TestAssembleLastEmulatorScopeWins(t *testing.T) {
	view := dom.New("div")
	first := dom.New("div", "panel-view").Add(
		dom.New("div", "panel-header").Add(
			dom.New("span", "panel-label").WithText("outer"),
		),
	)
	second := dom.New("div", "panel-view").Add(
		dom.New("div", "panel-header").Add(
			dom.New("span", "panel-label").WithText("inner"),
		),
	)
	view.Add(first, second)
	doc, err := Assemble(view)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != "inner" {
		t.Errorf("id = %q, want inner", doc.ID)
	}
}

func TestAssembleNoSourceData(t *testing.T) {
	_, err := Assemble(dom.New("div").Add(dom.New("div", "sidebar")))
	if !errors.Is(err, ErrNoSourceData) {
		t.Errorf("err = %v, want ErrNoSourceData", err)
	}
}

func TestAssembleExplicitScope(t *testing.T) {
	// an explicit scope that is not a production root parses as emulator
	scope := dom.New("div", "panel-view").Add(
		dom.New("div", "panel-header").Add(
			dom.New("span", "panel-label").WithText("scoped"),
		),
	)
	view := dom.New("div").Add(prodView(), scope)
	doc, err := Assemble(view, WithScope(scope))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Frontend != EmulatorFrontend || doc.ID != "scoped" {
		t.Errorf("got %v %q", doc.Frontend, doc.ID)
	}
}

func TestLocationID(t *testing.T) {
	tests := []struct {
		location string
		expected string
	}{
		{"https://example.com/data/users/42", "42"},
		{"https://example.com/data/users/42/", "42"},
		{"/users/42?tab=data", "42"},
		{"/users/42#top", "42"},
		{"", PlaceholderID},
		{"///", PlaceholderID},
		{"?tab=data", PlaceholderID},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := locationID(tt.location); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
