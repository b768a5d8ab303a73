// Package term is an interactive terminal viewer for a sheet. Keys and
// mouse clicks become navigations applied through the engine.
package term

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/gridnav/internal/history"
	"github.com/dshills/gridnav/internal/logging"
	"github.com/dshills/gridnav/internal/navigation"
	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/viewport"
)

// Screen regions.
const (
	gutterWidth  = 8
	headerHeight = 1
	statusHeight = 1
)

var (
	styleHeader   = tcell.StyleDefault.Bold(true).Reverse(true)
	styleCell     = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Dim(true)
)

// Sheet is the grid the viewer shows.
type Sheet interface {
	navigation.Context
	Value(cell reference.Cell) string
}

// Viewer draws a viewport on a tcell screen.
type Viewer struct {
	mu sync.Mutex

	screen  tcell.Screen
	sheet   Sheet
	engine  *navigation.Engine
	journal *history.Journal
	logger  *logging.Logger
	scale   Scale

	view   viewport.Viewport
	layout layout
	status string
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithJournal records navigations so they can be undone with u and redone
// with Ctrl+R.
func WithJournal(j *history.Journal) Option {
	return func(v *Viewer) {
		v.journal = j
	}
}

// WithScale sets the pixel to terminal cell ratio.
func WithScale(s Scale) Option {
	return func(v *Viewer) {
		if s.PixelsPerColumn > 0 && s.PixelsPerRow > 0 {
			v.scale = s
		}
	}
}

// WithLogger sets the viewer logger.
func WithLogger(l *logging.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a viewer. The screen is initialized by Run.
func New(screen tcell.Screen, sheet Sheet, engine *navigation.Engine, view viewport.Viewport, opts ...Option) *Viewer {
	v := &Viewer{
		screen: screen,
		sheet:  sheet,
		engine: engine,
		logger: logging.Null,
		scale:  DefaultScale,
		view:   view,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("term")
	return v
}

// NewTerminal creates a viewer on the process terminal.
func NewTerminal(sheet Sheet, engine *navigation.Engine, view viewport.Viewport, opts ...Option) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen, sheet, engine, view, opts...), nil
}

// Viewport returns the current viewport.
func (v *Viewer) Viewport() viewport.Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

// Status returns the status line text.
func (v *Viewer) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Init prepares the screen and sizes the viewport to it.
func (v *Viewer) Init() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	v.screen.EnableMouse()
	v.mu.Lock()
	v.resize()
	v.mu.Unlock()
	return nil
}

// Run shows the viewer until the user quits or ctx is done, and returns
// the final viewport.
func (v *Viewer) Run(ctx context.Context) (viewport.Viewport, error) {
	if err := v.Init(); err != nil {
		return v.view, err
	}
	defer v.screen.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return v.Viewport(), nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return v.Viewport(), ctx.Err()
		}
		if !v.HandleEvent(ev) {
			return v.Viewport(), nil
		}
		v.Draw()
	}
}

// HandleEvent processes one event and reports whether the viewer should
// keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	case *tcell.EventKey:
		switch keyCommand(e) {
		case cmdQuit:
			return false
		case cmdUndo:
			v.undo()
			return true
		case cmdRedo:
			v.redo()
			return true
		}
		rect := v.view.Rectangle()
		if n, ok := keyNavigation(e, int(rect.Width()), int(rect.Height())); ok {
			v.apply(n)
		}
	case *tcell.EventMouse:
		if e.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := e.Position()
		cell, ok := v.layout.cellAt(x, y)
		if !ok {
			return true
		}
		n, err := navigation.NewSelect(cell)
		if err == nil {
			v.apply(n)
		}
	}
	return true
}

func (v *Viewer) apply(n navigation.Navigation) {
	var ok bool
	if v.journal != nil {
		v.view, ok = v.journal.Apply(v.engine, v.view, n)
	} else {
		v.view, ok = v.engine.Apply(v.view, n)
	}
	if ok {
		v.status = n.Text()
	} else {
		v.status = n.Text() + " (ignored)"
	}
}

func (v *Viewer) undo() {
	if v.journal == nil {
		return
	}
	e, err := v.journal.Undo()
	if err != nil {
		v.status = err.Error()
		return
	}
	v.view = e.Before()
	v.status = "undo " + e.List().Text()
}

func (v *Viewer) redo() {
	if v.journal == nil {
		return
	}
	e, err := v.journal.Redo()
	if err != nil {
		v.status = err.Error()
		return
	}
	v.view = e.After()
	v.status = "redo " + e.List().Text()
}

// resize fits the viewport to the screen.
func (v *Viewer) resize() {
	w, h := v.screen.Size()
	width := float64(max(0, w-gutterWidth)) * v.scale.PixelsPerColumn
	height := float64(max(0, h-headerHeight-statusHeight)) * v.scale.PixelsPerRow
	v.view = v.view.WithRectangle(v.view.Rectangle().WithSize(width, height))
}

// Draw renders the grid, headers and status line.
func (v *Viewer) Draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Clear()
	w, h := v.screen.Size()

	windows, err := viewport.ComputeWindows(v.view.Rectangle(), true, nil, v.sheet)
	if err != nil {
		v.logger.Warn("layout failed: %v", err)
		v.drawText(0, h-1, w, err.Error(), styleStatus)
		v.screen.Show()
		return
	}
	v.layout = computeLayout(windows, v.sheet, v.scale, gutterWidth, headerHeight, w, h-statusHeight)

	var sel reference.Selection
	if v.view.HasSelection() {
		sel = v.view.Selection().Selection()
	}

	for _, c := range v.layout.Columns {
		v.fill(c.X, 0, c.Width, 1, styleHeader)
		v.drawText(c.X, 0, c.Width, " "+c.Column.String(), styleHeader)
	}
	for _, r := range v.layout.Rows {
		v.fill(0, r.Y, gutterWidth, r.Height, styleHeader)
		v.drawText(0, r.Y, gutterWidth, fmt.Sprintf("%*s ", gutterWidth-1, r.Row.String()), styleHeader)
		for _, c := range v.layout.Columns {
			cell := reference.NewCell(c.Column, r.Row)
			style := styleCell
			if sel != nil && reference.Test(sel, cell) {
				style = styleSelected
			}
			v.fill(c.X, r.Y, c.Width, r.Height, style)
			v.drawText(c.X, r.Y, c.Width-1, v.sheet.Value(cell), style)
		}
	}

	v.drawText(0, h-1, w, v.statusLine(windows), styleStatus)
	v.screen.Show()
}

func (v *Viewer) statusLine(windows viewport.Windows) string {
	parts := []string{v.view.String()}
	if v.view.HasSelection() {
		parts = append(parts, "anchor "+v.view.Selection().Anchor().String())
	}
	parts = append(parts, "windows "+windows.String())
	if v.status != "" {
		parts = append(parts, v.status)
	}
	return strings.Join(parts, " | ")
}

func (v *Viewer) fill(x, y, width, height int, style tcell.Style) {
	for dy := range height {
		for dx := range width {
			v.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (v *Viewer) drawText(x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	col := x
	state := -1
	rest := truncate(text, width)
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		v.screen.SetContent(col, y, runes[0], runes[1:], style)
		col += max(w, 1)
	}
}
