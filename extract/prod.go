package extract

import (
	"github.com/doclift/doclift/debug"
	"github.com/doclift/doclift/dom"
	"github.com/doclift/doclift/ir"
)

// Production rendering markers.
const (
	ProductionRootClass = "panel-document"

	prodItemClass     = "field-item"
	prodKeyClass      = "field-key"
	prodTypeClass     = "field-type"
	prodSummaryClass  = "field-summary"
	prodChildrenClass = "field-children"
)

// ProductionRoot returns the production record container under view, or
// nil when the view holds none.
func ProductionRoot(view *dom.Element) *dom.Element {
	if view.HasClass(ProductionRootClass) {
		return view
	}
	return view.Find(dom.ByClass(ProductionRootClass))
}

// FromProduction parses a production container into an object node. Rows
// are visited in document order; a row without a key is skipped entirely,
// and duplicate keys resolve last-write-wins.
func FromProduction(container *dom.Element) *ir.Node {
	res := ir.Object()
	for _, item := range container.ChildrenWhere(dom.ByClass(prodItemClass)) {
		keyEl := item.Find(dom.ByClass(prodKeyClass))
		if keyEl == nil {
			continue
		}
		key := keyEl.Text()
		label := ""
		if typeEl := item.Find(dom.ByClass(prodTypeClass)); typeEl != nil {
			label = typeEl.Text()
		}
		if debug.Extract() {
			debug.Logf("production item %q type %q\n", key, label)
		}
		switch label {
		case ir.MapLabel:
			res.Set(key, prodNested(item))
		case ir.ArrayLabel:
			// the rendering keys array entries by index; rebuild the
			// dense sequence from the intermediate object
			res.Set(key, ir.Dense(prodNested(item)))
		default:
			res.Set(key, ir.CoerceTyped(label, summaryText(item)))
		}
	}
	return res
}

// prodNested parses the nested content of a container row, which lives in
// the row's next sibling when that sibling is tagged as a children
// subtree. An absent or wrongly tagged sibling reads as empty.
func prodNested(item *dom.Element) *ir.Node {
	sib := item.NextSibling()
	if sib == nil || !sib.HasClass(prodChildrenClass) {
		return ir.Object()
	}
	return FromProduction(sib)
}

// summaryText reads a leaf row's rendered value: the summary element's
// full-text attribute when present, its visible text otherwise.
func summaryText(item *dom.Element) string {
	sum := item.Find(dom.ByClass(prodSummaryClass))
	if sum == nil {
		return ""
	}
	if v, ok := sum.Attr("title"); ok {
		return v
	}
	return sum.Text()
}
