// Package grid provides an in-memory sheet: column widths and row heights,
// hidden and frozen columns and rows, labels and cell values. It implements
// every collaborator the navigation engine reads from.
//
// A Sheet is safe for concurrent use. Sheets are built in code with New and
// the Set methods, or loaded from a TOML or YAML fixture:
//
//	sheet, err := grid.Load("budget.toml", grid.WithDefaultSize(100, 20))
//
// Structural edits (InsertColumns, DeleteColumns, InsertRows, DeleteRows)
// move cells, label targets, sizes and hidden flags along the edited axis
// and return the labels whose targets were removed.
package grid
