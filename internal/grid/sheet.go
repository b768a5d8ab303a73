package grid

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/selection"
)

// Default sizes in pixels.
const (
	DefaultColumnWidth = 100
	DefaultRowHeight   = 20
)

// Cell is a stored cell value.
type Cell struct {
	Ref   reference.Cell
	Value string
}

// Reference returns the address of the cell.
func (c Cell) Reference() reference.Cell { return c.Ref }

// Sheet is a mutable in-memory grid. It is safe for concurrent use.
type Sheet struct {
	mu sync.RWMutex

	columnWidth float64
	rowHeight   float64
	widths      map[int]float64
	heights     map[int]float64

	hiddenColumns map[int]struct{}
	hiddenRows    map[int]struct{}
	frozenColumns int
	frozenRows    int

	labels   map[string]selection.Mapping
	cells    map[reference.Cell]Cell
	maxDepth int
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithDefaultSize sets the width of columns and height of rows that have no
// explicit size. Non-positive values are ignored.
func WithDefaultSize(columnWidth, rowHeight float64) Option {
	return func(s *Sheet) {
		if columnWidth > 0 {
			s.columnWidth = columnWidth
		}
		if rowHeight > 0 {
			s.rowHeight = rowHeight
		}
	}
}

// WithLabelDepth sets the maximum label chain followed by ResolveLabel.
func WithLabelDepth(depth int) Option {
	return func(s *Sheet) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// New creates an empty sheet.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		columnWidth:   DefaultColumnWidth,
		rowHeight:     DefaultRowHeight,
		widths:        make(map[int]float64),
		heights:       make(map[int]float64),
		hiddenColumns: make(map[int]struct{}),
		hiddenRows:    make(map[int]struct{}),
		labels:        make(map[string]selection.Mapping),
		cells:         make(map[reference.Cell]Cell),
		maxDepth:      selection.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetColumnWidth sets the width of column in pixels. Zero or less restores
// the default width.
func (s *Sheet) SetColumnWidth(column reference.Column, width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width <= 0 {
		delete(s.widths, column.Value())
		return
	}
	s.widths[column.Value()] = width
}

// SetRowHeight sets the height of row in pixels. Zero or less restores the
// default height.
func (s *Sheet) SetRowHeight(row reference.Row, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height <= 0 {
		delete(s.heights, row.Value())
		return
	}
	s.heights[row.Value()] = height
}

// SetColumnHidden hides or shows column.
func (s *Sheet) SetColumnHidden(column reference.Column, hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setFlag(s.hiddenColumns, column.Value(), hidden)
}

// SetRowHidden hides or shows row.
func (s *Sheet) SetRowHidden(row reference.Row, hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setFlag(s.hiddenRows, row.Value(), hidden)
}

func setFlag(set map[int]struct{}, key int, on bool) {
	if on {
		set[key] = struct{}{}
	} else {
		delete(set, key)
	}
}

// Freeze pins the first columns and rows. Zero unfreezes an axis.
func (s *Sheet) Freeze(columns, rows int) error {
	if columns < 0 || columns > reference.MaxColumn {
		return fmt.Errorf("freeze %d columns: %w", columns, reference.ErrInvalidColumn)
	}
	if rows < 0 || rows > reference.MaxRow {
		return fmt.Errorf("freeze %d rows: %w", rows, reference.ErrInvalidRow)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozenColumns = columns
	s.frozenRows = rows
	return nil
}

// SetLabel defines label as target. The target may be another label.
func (s *Sheet) SetLabel(label reference.Label, target reference.Selection) error {
	if target == nil {
		return fmt.Errorf("label %s target: %w", label, reference.ErrNilArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[label.Key()] = selection.Mapping{Label: label, Target: target}
	return nil
}

// DeleteLabel removes a label definition.
func (s *Sheet) DeleteLabel(label reference.Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.labels, label.Key())
}

// Labels returns every label mapping ordered by name.
func (s *Sheet) Labels() []selection.Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]selection.Mapping, 0, len(s.labels))
	for _, k := range slices.Sorted(maps.Keys(s.labels)) {
		out = append(out, s.labels[k])
	}
	return out
}

// SetCell stores value at cell. An empty value clears the cell.
func (s *Sheet) SetCell(cell reference.Cell, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.cells, cell.Key())
		return
	}
	s.cells[cell.Key()] = Cell{Ref: cell, Value: value}
}

// Value returns the text stored at cell, empty when absent.
func (s *Sheet) Value(cell reference.Cell) string {
	c, _ := s.LoadCell(cell)
	return c.Value
}

// IsColumnHidden implements viewport.Hidden.
func (s *Sheet) IsColumnHidden(column reference.Column) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hiddenColumns[column.Value()]
	return ok
}

// IsRowHidden implements viewport.Hidden.
func (s *Sheet) IsRowHidden(row reference.Row) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hiddenRows[row.Value()]
	return ok
}

// ColumnWidth implements viewport.Metrics.
func (s *Sheet) ColumnWidth(column reference.Column) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.widths[column.Value()]; ok {
		return w
	}
	return s.columnWidth
}

// RowHeight implements viewport.Metrics.
func (s *Sheet) RowHeight(row reference.Row) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := s.heights[row.Value()]; ok {
		return h
	}
	return s.rowHeight
}

// FrozenColumns implements viewport.Panes.
func (s *Sheet) FrozenColumns() (reference.ColumnRange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.frozenColumns == 0 {
		return reference.ColumnRange{}, false
	}
	return reference.ColumnRangeOf(
		reference.MustColumn(0, reference.Relative),
		reference.MustColumn(s.frozenColumns-1, reference.Relative),
	), true
}

// FrozenRows implements viewport.Panes.
func (s *Sheet) FrozenRows() (reference.RowRange, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.frozenRows == 0 {
		return reference.RowRange{}, false
	}
	return reference.RowRangeOf(
		reference.MustRow(0, reference.Relative),
		reference.MustRow(s.frozenRows-1, reference.Relative),
	), true
}

// LoadLabelMapping implements selection.LabelStore.
func (s *Sheet) LoadLabelMapping(label reference.Label) (selection.Mapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.labels[label.Key()]
	return m, ok
}

// ResolveLabel follows label to its first non-label target.
func (s *Sheet) ResolveLabel(label reference.Label) (reference.Selection, error) {
	s.mu.RLock()
	depth := s.maxDepth
	s.mu.RUnlock()
	r, err := selection.NewResolver(s, selection.WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}
	return r.Resolve(label)
}

// LoadCell implements reference.CellLoader.
func (s *Sheet) LoadCell(cell reference.Cell) (Cell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[cell.Key()]
	return c, ok
}

// LoadCellRange implements reference.CellLoader.
func (s *Sheet) LoadCellRange(r reference.CellRange) []Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Cell
	for k, c := range s.cells {
		if r.Contains(k) {
			out = append(out, c)
		}
	}
	return out
}
