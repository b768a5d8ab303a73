// Package reference provides the grid addressing model: column, row and cell
// references, their ranges, labels, and the Selection sum type built from them.
//
// The reference package handles:
//
//   - Column and row offsets with an Absolute ($) or Relative kind
//   - Parsing and printing of A1-style text ("$A$1", "B2:D9", "C:C", "3:3")
//   - Inclusive ranges built from validated bounds
//   - The eight traversal orders (paths) over a cell range
//   - Selection algebra: containment tests, intersection, conversions
//   - Reference mappers used to re-target selections after structural edits
//
// Reference Kind:
//
// Two references with the same offset but different kinds are different
// values: Equal and Compare see the kind. Map keys and set membership must use
// Key or KeyCompare instead, which ignore it, so that "$A" and "A" address the
// same column.
//
// Selections:
//
// Selection is a closed set of variants: Cell, CellRange, Column, ColumnRange,
// Row, RowRange and Label. Operations over selections are package functions
// that switch exhaustively over the variants.
//
// Basic usage:
//
//	cell, err := reference.ParseCell("$B$2")
//	moved := cell.AddSaturated(3, -10) // E1, clamped at the top edge
//
//	r := reference.CellRangeOf(cell, moved)
//	for c := range r.Cells(reference.LRTD) {
//	    fmt.Println(c)
//	}
//
// Thread Safety:
//
// All types in this package are immutable value types and safe for
// concurrent use.
package reference
