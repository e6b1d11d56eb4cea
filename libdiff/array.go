package libdiff

import (
	"strconv"

	"github.com/doclift/doclift/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns two arrays element-wise and reports changes as an
// object keyed by result index.
//
//  1. record a summary of each element; for scalars the summary is
//     <type>-<value>, for containers just the type
//  2. diff the sequence of summaries
//  3. for every matching summary, recurse (containers of equal type
//     align here and diff structurally)
//  4. for every non-matching summary, add an index-keyed marker
func DiffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.Object()

	fi, ti, ri := 0, 0, 0
	var delIndex *int
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res.Set(strconv.Itoa(ri), MakeDiff(from.Values[fi], nil))
				tmp := ri
				delIndex = &tmp
				ri++
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = nil
			for range diff.Text {
				di := df(from.Values[fi], to.Values[ti])
				if di != nil {
					res.Set(strconv.Itoa(ri), di)
				}
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if delIndex != nil && *delIndex == ri-1 {
					// a delete followed directly by an insert is a replace
					res.Set(strconv.Itoa(ri-1),
						MakeDiff(from.Values[fi-1], to.Values[ti]))
				} else {
					res.Set(strconv.Itoa(ri), MakeDiff(nil, to.Values[ti]))
					ri++
				}
				ti++
				delIndex = nil
			}
			delIndex = nil
		}
	}
	if len(res.Fields) == 0 {
		return nil
	}
	return res
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v *ir.Node) string {
	switch v.Type {
	case ir.ObjectType, ir.ArrayType:
		return v.Type.String()
	case ir.NumberType:
		return v.Type.String() + "-" + ir.NumberString(v)
	case ir.StringType:
		return v.Type.String() + "-" + v.String
	case ir.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	default:
		return v.Type.String()
	}
}
