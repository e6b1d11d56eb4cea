// Package ir provides the intermediate representation (IR) for extracted
// documents.
//
// # Overview
//
// The IR is the canonical value model every rendering normalizes into: a
// recursive tagged union of null, boolean, number, string, array and
// object nodes. Whatever the source layout looked like, the walkers in
// package extract produce ir.Node trees and everything downstream
// (encoding, diffing, filtering) operates on them.
//
// # Node Structure
//
// The Type field selects which value fields are meaningful:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 when the value is an exact integer, Float64
//     otherwise
//   - StringType: String
//   - ArrayType: Values, a dense ordered sequence
//   - ObjectType: parallel Fields/Values slices; Fields[i] is the string
//     key for Values[i]
//
// Object field order is insertion order, which for extracted documents is
// the source tree's document order. Duplicate keys never survive: Set
// replaces the value in place, so the later write wins while the key
// keeps its original position.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.Object().Set("key", ir.FromString("value"))
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Leaf Coercion
//
// Coerce and CoerceTyped turn raw rendered tokens into scalar nodes; both
// are total functions with no error path. Dense rebuilds a dense array
// from an object keyed by rendered array indices.
//
// # JSON Interoperability
//
// Node implements MarshalJSON producing the canonical value form (field
// order preserved, non-finite numbers rendered null). ToAny converts to
// plain Go values for consumers that want maps and slices, at the cost of
// field order.
//
// # Thread Safety
//
// Node structures are not thread-safe. Each extraction call builds its
// own tree; share nodes across goroutines only after cloning or with
// external synchronization.
package ir
