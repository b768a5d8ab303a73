// Package viewport models the visible part of a grid: a pixel Rectangle
// anchored at a home cell, the frozen panes pinned to its top and left edges,
// and the Windows of cell ranges actually on screen.
//
// Sizes come from a Sheet, which answers which columns and rows are hidden,
// how wide or tall each one is, and how many leading columns and rows are
// frozen. Hidden columns and rows, and those with no size, take no space and
// are skipped by every walk.
//
// Pixel walks use floor semantics: a column is crossed only when the whole
// of its width fits in the remaining budget, and any remainder is dropped.
//
//	rect, _ := viewport.NewRectangle(reference.MustCell("A1"), 0, 0, 800, 600)
//	windows, err := viewport.ComputeWindows(rect, true, nil, sheet)
//	if windows.Test(reference.MustCell("C4")) {
//	    // C4 is on screen
//	}
package viewport
