// Package selection pairs a reference.Selection with the Anchor that stays
// fixed while the selection is extended, and resolves labels to the
// selections they name.
//
// An anchor names the fixed corner (cell ranges), edge (column and row
// ranges) or None (single cells, columns and rows). Extending moves the
// opposite end; ExtendCells, ExtendColumns and ExtendRows normalize the
// result and recompute the anchor from where the fixed end ended up.
//
// Label chains are followed by a Resolver until the first non-label target.
// The resolver keeps a visited set and a depth limit so that a cycle such as
// A -> B -> A fails with ErrCyclicLabel instead of looping.
package selection
