package libdiff

import (
	"github.com/doclift/doclift/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// 1 diff field names
// for every different field name add a marker
// for every same field name, recurse on the value
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.Object()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := df(from.Values[fi], to.Values[ti])
				if fRes != nil {
					res.Set(runeMap[r], fRes)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res.Set(runeMap[r], MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(res.Fields) == 0 {
		return nil
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
