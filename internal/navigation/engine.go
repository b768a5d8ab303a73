package navigation

import (
	"fmt"
	"sync/atomic"

	"github.com/dshills/gridnav/internal/logging"
	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/selection"
	"github.com/dshills/gridnav/internal/viewport"
)

// Context is what the engine reads while navigating: layout from the sheet
// and label definitions.
type Context interface {
	viewport.Sheet

	// ResolveLabel returns the non-label selection a label names.
	ResolveLabel(label reference.Label) (reference.Selection, error)
}

// Engine applies navigations to viewports. It holds no navigation state and
// is safe for concurrent use when its Context is.
type Engine struct {
	ctx    Context
	logger *logging.Logger

	applied atomic.Uint64
	ignored atomic.Uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; every navigation is logged at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine reading from ctx.
func NewEngine(ctx Context, opts ...Option) *Engine {
	e := &Engine{
		ctx:    ctx,
		logger: logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("navigation")
	return e
}

// Stats reports how many navigations were applied and ignored.
type Stats struct {
	Applied uint64
	Ignored uint64
}

// Stats returns the counters since the engine was created.
func (e *Engine) Stats() Stats {
	return Stats{Applied: e.applied.Load(), Ignored: e.ignored.Load()}
}

// Apply returns the viewport after n. The result is false, with v returned
// unchanged, when n does not apply: no visible neighbor, a row navigation on
// a column selection, an unresolvable label, or a scroll that cannot move.
func (e *Engine) Apply(v viewport.Viewport, n Navigation) (viewport.Viewport, bool) {
	out, err := e.apply(v, n)
	if err != nil {
		e.ignored.Add(1)
		e.logger.Debug("ignored %s: %v", n, err)
		return v, false
	}
	e.applied.Add(1)
	e.logger.Debug("applied %s: %s", n, out)
	return out, true
}

// Step records one navigation of a replay.
type Step struct {
	Navigation Navigation
	Before     viewport.Viewport
	After      viewport.Viewport
	Applied    bool
}

// Trace applies every navigation in list and records each step. Ignored
// navigations leave the viewport as it was.
func (e *Engine) Trace(v viewport.Viewport, list List) []Step {
	steps := make([]Step, 0, list.Len())
	for _, n := range list.All() {
		after, ok := e.Apply(v, n)
		steps = append(steps, Step{Navigation: n, Before: v, After: after, Applied: ok})
		v = after
	}
	return steps
}

// Replay folds list over v and returns the final viewport.
func (e *Engine) Replay(v viewport.Viewport, list List) viewport.Viewport {
	for _, n := range list.All() {
		v, _ = e.Apply(v, n)
	}
	return v
}

// errNotApplicable carries the reason a navigation was ignored into the
// debug log.
type errNotApplicable string

func (e errNotApplicable) Error() string { return string(e) }

const (
	errNoSelection errNotApplicable = "nothing selected"
	errMismatch    errNotApplicable = "selection does not move along this axis"
	errNoNeighbor  errNotApplicable = "no visible neighbor"
	errNoMove      errNotApplicable = "already at the limit"
)

func (e *Engine) apply(v viewport.Viewport, n Navigation) (viewport.Viewport, error) {
	if e.ctx == nil {
		return v, fmt.Errorf("context: %w", reference.ErrNilArgument)
	}
	v, err := e.resolve(v)
	if err != nil {
		return v, err
	}

	switch n := n.(type) {
	case Unit:
		if n.extend {
			return e.extendUnit(v, n)
		}
		return e.moveUnit(v, n)
	case Pixels:
		if n.extend {
			return e.extendPixels(v, n)
		}
		return e.movePixels(v, n)
	case Select:
		return e.selectTarget(v, n)
	case nil:
		return v, fmt.Errorf("navigation: %w", reference.ErrNilArgument)
	default:
		return v, fmt.Errorf("%T: %w", n, ErrUnknownCommand)
	}
}

// resolve replaces a label home with the top left cell of its target and a
// label selection with its target.
func (e *Engine) resolve(v viewport.Viewport) (viewport.Viewport, error) {
	rect := v.Rectangle()
	if l, ok := rect.Home().(reference.Label); ok {
		target, err := e.ctx.ResolveLabel(l)
		if err != nil {
			return v, err
		}
		r, err := reference.ToCellRange(target)
		if err != nil {
			return v, err
		}
		v = v.WithRectangle(rect.WithHome(r.TopLeft()))
	}

	sel := v.Selection()
	if l, ok := sel.Selection().(reference.Label); ok {
		target, err := e.ctx.ResolveLabel(l)
		if err != nil {
			return v, err
		}
		if selection.Allowed(target, sel.Anchor()) {
			resolved, err := selection.New(target, sel.Anchor())
			if err != nil {
				return v, err
			}
			v = v.WithSelection(resolved)
		} else {
			v = v.WithSelection(selection.Of(target))
		}
	}
	return v, nil
}

func (e *Engine) moveUnit(v viewport.Viewport, n Unit) (viewport.Viewport, error) {
	sel := v.Selection()
	if sel.IsEmpty() {
		return v, errNoSelection
	}

	var target reference.Selection
	if n.dir.Horizontal() {
		if _, moving, ok := sel.CellEnds(); ok {
			column, ok := viewport.NextColumn(e.ctx, moving.Column(), n.dir.Sign())
			if !ok {
				return v, errNoNeighbor
			}
			target = moving.SetColumn(column)
		} else if _, moving, ok := sel.ColumnEnds(); ok {
			column, ok := viewport.NextColumn(e.ctx, moving, n.dir.Sign())
			if !ok {
				return v, errNoNeighbor
			}
			target = column
		} else {
			return v, errMismatch
		}
	} else {
		if _, moving, ok := sel.CellEnds(); ok {
			row, ok := viewport.NextRow(e.ctx, moving.Row(), n.dir.Sign())
			if !ok {
				return v, errNoNeighbor
			}
			target = moving.SetRow(row)
		} else if _, moving, ok := sel.RowEnds(); ok {
			row, ok := viewport.NextRow(e.ctx, moving, n.dir.Sign())
			if !ok {
				return v, errNoNeighbor
			}
			target = row
		} else {
			return v, errMismatch
		}
	}

	return e.reveal(v.WithSelection(selection.Of(target)), target), nil
}

func (e *Engine) extendUnit(v viewport.Viewport, n Unit) (viewport.Viewport, error) {
	return e.extend(v, func(sel selection.AnchoredSelection) (reference.Selection, selection.AnchoredSelection, error) {
		if n.dir.Horizontal() {
			if fixed, moving, ok := sel.CellEnds(); ok {
				column, ok := viewport.NextColumn(e.ctx, moving.Column(), n.dir.Sign())
				if !ok {
					return nil, sel, errNoNeighbor
				}
				moved := moving.SetColumn(column)
				return moved, selection.ExtendCells(fixed, moved, sel.Anchor()), nil
			}
			if fixed, moving, ok := sel.ColumnEnds(); ok {
				column, ok := viewport.NextColumn(e.ctx, moving, n.dir.Sign())
				if !ok {
					return nil, sel, errNoNeighbor
				}
				return column, selection.ExtendColumns(fixed, column), nil
			}
			return nil, sel, errMismatch
		}
		if fixed, moving, ok := sel.CellEnds(); ok {
			row, ok := viewport.NextRow(e.ctx, moving.Row(), n.dir.Sign())
			if !ok {
				return nil, sel, errNoNeighbor
			}
			moved := moving.SetRow(row)
			return moved, selection.ExtendCells(fixed, moved, sel.Anchor()), nil
		}
		if fixed, moving, ok := sel.RowEnds(); ok {
			row, ok := viewport.NextRow(e.ctx, moving, n.dir.Sign())
			if !ok {
				return nil, sel, errNoNeighbor
			}
			return row, selection.ExtendRows(fixed, row), nil
		}
		return nil, sel, errMismatch
	})
}

func (e *Engine) extendPixels(v viewport.Viewport, n Pixels) (viewport.Viewport, error) {
	delta := float64(n.Delta())
	return e.extend(v, func(sel selection.AnchoredSelection) (reference.Selection, selection.AnchoredSelection, error) {
		if n.dir.Horizontal() {
			if fixed, moving, ok := sel.CellEnds(); ok {
				column := viewport.WalkColumn(e.ctx, moving.Column(), delta, false)
				if column.Value() == moving.Column().Value() {
					return nil, sel, errNoMove
				}
				moved := moving.SetColumn(column)
				return moved, selection.ExtendCells(fixed, moved, sel.Anchor()), nil
			}
			if fixed, moving, ok := sel.ColumnEnds(); ok {
				column := viewport.WalkColumn(e.ctx, moving, delta, false)
				if column.Value() == moving.Value() {
					return nil, sel, errNoMove
				}
				return column, selection.ExtendColumns(fixed, column), nil
			}
			return nil, sel, errMismatch
		}
		if fixed, moving, ok := sel.CellEnds(); ok {
			row := viewport.WalkRow(e.ctx, moving.Row(), delta, false)
			if row.Value() == moving.Row().Value() {
				return nil, sel, errNoMove
			}
			moved := moving.SetRow(row)
			return moved, selection.ExtendCells(fixed, moved, sel.Anchor()), nil
		}
		if fixed, moving, ok := sel.RowEnds(); ok {
			row := viewport.WalkRow(e.ctx, moving, delta, false)
			if row.Value() == moving.Value() {
				return nil, sel, errNoMove
			}
			return row, selection.ExtendRows(fixed, row), nil
		}
		return nil, sel, errMismatch
	})
}

// extend runs step against the current selection, stores the result and
// reveals the moved end.
func (e *Engine) extend(v viewport.Viewport, step func(selection.AnchoredSelection) (reference.Selection, selection.AnchoredSelection, error)) (viewport.Viewport, error) {
	sel := v.Selection()
	if sel.IsEmpty() {
		return v, errNoSelection
	}
	moved, extended, err := step(sel)
	if err != nil {
		return v, err
	}
	return e.reveal(v.WithSelection(extended), moved), nil
}

func (e *Engine) movePixels(v viewport.Viewport, n Pixels) (viewport.Viewport, error) {
	dx, dy := 0.0, 0.0
	if n.dir.Horizontal() {
		dx = float64(n.Delta())
	} else {
		dy = float64(n.Delta())
	}

	rect, moved, err := viewport.ScrollBy(v.Rectangle(), dx, dy, e.ctx)
	if err != nil {
		return v, err
	}
	if !moved {
		return v, errNoMove
	}
	v = v.WithRectangle(rect)

	if v.HasSelection() {
		windows, err := viewport.ComputeWindows(rect, true, nil, e.ctx)
		if err != nil {
			return v, err
		}
		if !windows.Test(v.Selection().Selection()) {
			v = v.ClearSelection()
		}
	}
	return v, nil
}

func (e *Engine) selectTarget(v viewport.Viewport, n Select) (viewport.Viewport, error) {
	rect := v.Rectangle()
	home, ok := rect.HomeCell()
	if !ok {
		return v, viewport.ErrUnresolvedHome
	}

	column, row := home.Column(), home.Row()
	switch t := n.target.(type) {
	case reference.Cell:
		if !e.frozenColumn(t.Column()) {
			column = t.Column()
		}
		if !e.frozenRow(t.Row()) {
			row = t.Row()
		}
	case reference.Column:
		if !e.frozenColumn(t) {
			column = t
		}
	case reference.Row:
		if !e.frozenRow(t) {
			row = t
		}
	default:
		return v, fmt.Errorf("select %v: %w", n.target, reference.ErrUnsupported)
	}

	x, y := rect.X(), rect.Y()
	if column.KeyCompare(home.Column()) != 0 {
		x = 0
	}
	if row.KeyCompare(home.Row()) != 0 {
		y = 0
	}
	rect = rect.WithHome(reference.NewCell(column, row)).WithOffset(x, y)
	return v.WithRectangle(rect).WithSelection(selection.Of(n.target)), nil
}

func (e *Engine) frozenColumn(c reference.Column) bool {
	r, ok := e.ctx.FrozenColumns()
	return ok && r.Contains(c)
}

func (e *Engine) frozenRow(row reference.Row) bool {
	r, ok := e.ctx.FrozenRows()
	return ok && r.Contains(row)
}

// reveal scrolls v so that target is visible.
func (e *Engine) reveal(v viewport.Viewport, target reference.Selection) viewport.Viewport {
	rect, changed, err := viewport.Reveal(v.Rectangle(), target, e.ctx)
	if err != nil || !changed {
		return v
	}
	return v.WithRectangle(rect)
}
