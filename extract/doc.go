// Package extract holds the two tree walkers that normalize a rendered
// view snapshot into the canonical ir value model.
//
// Two structurally different renderings of the same data exist in the
// wild. The production rendering lays a record out as rows of
// key/type/summary triples whose nested content lives in a sibling
// subtree; the emulator rendering lays it out as a node tree with typed
// children containers. The walkers are fully independent: they share no
// state and no traversal code, only the ir model they both produce.
//
// Both walkers degrade locally instead of failing: a row without a key
// contributes nothing, a missing children container reads as empty, and
// leaf coercion is total. Selection between the walkers happens in the
// root doclift package.
package extract
