package reference

import "fmt"

// Stored is a value held by a cell store, addressed by a cell reference.
type Stored interface {
	Reference() Cell
}

// CellLoader is the read side of a cell store.
type CellLoader[V Stored] interface {
	// LoadCell returns the value at cell, if present.
	LoadCell(cell Cell) (V, bool)
	// LoadCellRange returns every present value inside r, in any order.
	LoadCellRange(r CellRange) []V
}

// ForEachCell walks r in path order, calling present for stored values and
// absent for empty cells. The range is loaded once.
func ForEachCell[V Stored](r CellRange, path RangePath, loader CellLoader[V], present func(V), absent func(Cell)) error {
	if loader == nil {
		return fmt.Errorf("loader: %w", ErrNilArgument)
	}
	if present == nil || absent == nil {
		return fmt.Errorf("callback: %w", ErrNilArgument)
	}

	loaded := make(map[Cell]V)
	for _, v := range loader.LoadCellRange(r) {
		loaded[v.Reference().Key()] = v
	}

	for cell := range r.Cells(path) {
		if v, ok := loaded[cell.Key()]; ok {
			present(v)
		} else {
			absent(cell)
		}
	}
	return nil
}
