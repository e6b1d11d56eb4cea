package extract

import (
	"github.com/doclift/doclift/debug"
	"github.com/doclift/doclift/dom"
	"github.com/doclift/doclift/ir"
)

// Emulator rendering markers.
const (
	EmulatorScopeClass = "panel-view"

	emuNodeClass     = "tree-node"
	emuKeyClass      = "node-key"
	emuTypeClass     = "node-type"
	emuValueClass    = "node-value"
	emuChildrenClass = "node-children"
	emuTreeClass     = "tree"
	emuHeaderClass   = "panel-header"
	emuLabelClass    = "panel-label"
)

// EmulatorScopes returns the open emulator panels under view in document
// order. Later panels represent deeper drill-downs.
func EmulatorScopes(view *dom.Element) []*dom.Element {
	if view.HasClass(EmulatorScopeClass) {
		return []*dom.Element{view}
	}
	return view.FindAll(dom.ByClass(EmulatorScopeClass))
}

// FromEmulator parses the record shown in an emulator panel scope into an
// object node. The scope's root node is normally map-typed and its folded
// children are the record's fields; a scope without a root node reads as
// an empty record.
func FromEmulator(scope *dom.Element) *ir.Node {
	root := scope.Find(dom.ByClass(emuNodeClass))
	if root == nil {
		return ir.Object()
	}
	if emuLabel(root) == ir.MapLabel {
		return emuMap(root)
	}
	return emuNode(root)
}

// emuNode parses one tree node into a single-entry object keyed by the
// node's declared field key. A node without a key child contributes
// nothing at all, not even a null.
func emuNode(node *dom.Element) *ir.Node {
	res := ir.Object()
	keyEl := node.ChildWhere(dom.ByClass(emuKeyClass))
	if keyEl == nil {
		return res
	}
	key := keyEl.Text()
	label := emuLabel(node)
	if debug.Extract() {
		debug.Logf("emulator node %q type %q\n", key, label)
	}
	switch label {
	case ir.MapLabel:
		res.Set(key, emuMap(node))
	case ir.ArrayLabel:
		// entry keys are the rendered indices; fold then densify
		res.Set(key, ir.Dense(emuMap(node)))
	default:
		valEl := node.ChildWhere(dom.ByClass(emuValueClass))
		if valEl == nil {
			res.Set(key, ir.Null())
			break
		}
		res.Set(key, ir.Coerce(valEl.Text()))
	}
	return res
}

// emuMap folds every grandchild node across the children container's
// intermediate subtrees, in document order, into one object. Duplicate
// keys resolve last-write-wins; a missing container reads as empty.
func emuMap(node *dom.Element) *ir.Node {
	res := ir.Object()
	container := node.ChildWhere(dom.ByClass(emuChildrenClass))
	if container == nil {
		return res
	}
	for _, tree := range container.ChildrenWhere(dom.ByClass(emuTreeClass)) {
		for _, child := range tree.ChildrenWhere(dom.ByClass(emuNodeClass)) {
			entry := emuNode(child)
			for i := range entry.Fields {
				res.Set(entry.Fields[i].String, entry.Values[i])
			}
		}
	}
	return res
}

func emuLabel(node *dom.Element) string {
	typeEl := node.ChildWhere(dom.ByClass(emuTypeClass))
	if typeEl == nil {
		return ir.UnknownLabel
	}
	return typeEl.Text()
}

// EmulatorID reads the record identifier from the scope's header label.
func EmulatorID(scope *dom.Element) (string, bool) {
	header := scope.Find(dom.ByClass(emuHeaderClass))
	if header == nil {
		return "", false
	}
	label := header.Find(dom.ByClass(emuLabelClass))
	if label == nil {
		return "", false
	}
	if v := label.Text(); v != "" {
		return v, true
	}
	return "", false
}
