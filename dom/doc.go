// Package dom models the rendered view tree the walkers consume: labeled
// elements with classification tags, attributes, text and ordered
// children, plus the structural queries the walkers need (class matching,
// scoped child queries, descendant search, sibling access).
//
// Snapshots can be loaded from serialized HTML (FromHTML) or from a JSON
// element dump (FromSnapshot). The loaded tree is treated as a momentary,
// consistent snapshot: nothing here guards against concurrent mutation
// because nothing mutates after loading.
package dom
