package grid

import (
	"fmt"
	"slices"

	"github.com/dshills/gridnav/internal/reference"
)

// InsertColumns inserts count empty columns before at. Cells, label targets,
// widths and hidden flags at or right of at shift right.
func (s *Sheet) InsertColumns(at reference.Column, count int) ([]reference.Label, error) {
	if count <= 0 {
		return nil, fmt.Errorf("insert %d columns: %w", count, reference.ErrInvalidColumn)
	}
	return s.remap(reference.InsertColumnsMapper(at, count)), nil
}

// DeleteColumns removes count columns starting at at. Cells inside are
// dropped, as are labels whose target touched them; the dropped labels are
// returned.
func (s *Sheet) DeleteColumns(at reference.Column, count int) ([]reference.Label, error) {
	if count <= 0 {
		return nil, fmt.Errorf("delete %d columns: %w", count, reference.ErrInvalidColumn)
	}
	return s.remap(reference.DeleteColumnsMapper(at, count)), nil
}

// InsertRows inserts count empty rows before at.
func (s *Sheet) InsertRows(at reference.Row, count int) ([]reference.Label, error) {
	if count <= 0 {
		return nil, fmt.Errorf("insert %d rows: %w", count, reference.ErrInvalidRow)
	}
	return s.remap(reference.InsertRowsMapper(at, count)), nil
}

// DeleteRows removes count rows starting at at.
func (s *Sheet) DeleteRows(at reference.Row, count int) ([]reference.Label, error) {
	if count <= 0 {
		return nil, fmt.Errorf("delete %d rows: %w", count, reference.ErrInvalidRow)
	}
	return s.remap(reference.DeleteRowsMapper(at, count)), nil
}

// remap passes every stored reference through mapper and returns the labels
// that were dropped.
func (s *Sheet) remap(mapper reference.Mapper) []reference.Label {
	s.mu.Lock()
	defer s.mu.Unlock()

	cells := make(map[reference.Cell]Cell, len(s.cells))
	for _, c := range s.cells {
		if moved, ok := mapper.MapCell(c.Ref); ok {
			cells[moved.Key()] = Cell{Ref: moved, Value: c.Value}
		}
	}
	s.cells = cells

	var dropped []reference.Label
	for key, m := range s.labels {
		target, ok, err := reference.ReplaceReferences(m.Target, mapper)
		if err != nil || !ok {
			delete(s.labels, key)
			dropped = append(dropped, m.Label)
			continue
		}
		m.Target = target
		s.labels[key] = m
	}

	s.widths = remapColumns(s.widths, mapper)
	s.heights = remapRows(s.heights, mapper)
	s.hiddenColumns = remapColumns(s.hiddenColumns, mapper)
	s.hiddenRows = remapRows(s.hiddenRows, mapper)

	slices.SortFunc(dropped, func(a, b reference.Label) int { return a.KeyCompare(b) })
	return dropped
}

// remapColumns moves per-column state. Only the column projection is
// consulted, so row edits leave it alone.
func remapColumns[V any](in map[int]V, mapper reference.Mapper) map[int]V {
	out := make(map[int]V, len(in))
	for i, v := range in {
		if moved, ok := mapper.MapColumn(reference.MustColumn(i, reference.Relative)); ok {
			out[moved.Value()] = v
		}
	}
	return out
}

func remapRows[V any](in map[int]V, mapper reference.Mapper) map[int]V {
	out := make(map[int]V, len(in))
	for i, v := range in {
		if moved, ok := mapper.MapRow(reference.MustRow(i, reference.Relative)); ok {
			out[moved.Value()] = v
		}
	}
	return out
}
