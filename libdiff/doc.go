// Package libdiff computes structural diffs between canonical values,
// typically the same record extracted from two different renderings or at
// two points in time.
//
// # Usage
//
//	// Compute diff between two nodes; nil means equal
//	diff := libdiff.Diff(oldNode, newNode)
//
// Diffs are themselves IR nodes: objects whose divergent positions hold
// marker objects with the removed value under "-" and the added value
// under "+". Array changes are reported under the result index.
//
// # Related Packages
//
//   - github.com/doclift/doclift/ir - IR representation
package libdiff
