package ir

import "strconv"

// Dense rebuilds a dense array from an object whose keys are rendered
// array indices. Keys that do not parse as non-negative integers are
// dropped; the result spans 0..max(index) with Null at every index the
// source never mentioned. An object with no surviving keys yields an
// empty array.
func Dense(obj *Node) *Node {
	entries := map[int]*Node{}
	maxIdx := -1
	for i, field := range obj.Fields {
		idx, err := strconv.Atoi(field.String)
		if err != nil || idx < 0 {
			continue
		}
		entries[idx] = obj.Values[i]
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	res := Array()
	for i := 0; i <= maxIdx; i++ {
		v := entries[i]
		if v == nil {
			v = Null()
		}
		res.Append(v)
	}
	return res
}
