package libdiff

import (
	"github.com/doclift/doclift/debug"
	"github.com/doclift/doclift/ir"
)

// DiffFunc recursively diffs two nodes, returning nil when they agree.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff computes a structural diff between two canonical values, such as
// the same record extracted from two renderings. The result is nil when
// the values agree; divergent positions become marker objects holding the
// removed value under "-" and the added value under "+".
func Diff(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil {
		return MakeDiff(from, to)
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	case ir.ArrayType:
		return DiffArray(from, to, Diff)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		if debug.Diff() {
			debug.Logf("leaf diff at %s: %v -> %v\n", from.Path(), from, to)
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds a marker object for one divergent position. One-sided
// markers represent pure inserts and deletes.
func MakeDiff(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	if from != nil {
		res.Set("-", from.Clone())
	}
	if to != nil {
		res.Set("+", to.Clone())
	}
	return res
}
