package term

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridnav/internal/grid"
	"github.com/dshills/gridnav/internal/history"
	"github.com/dshills/gridnav/internal/navigation"
	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/selection"
	"github.com/dshills/gridnav/internal/viewport"
)

func newViewer(t *testing.T, sheet *grid.Sheet, opts ...Option) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	rect, err := viewport.NewRectangle(reference.MustCell("A1"), 0, 0, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	view := viewport.New(rect, selection.Of(reference.MustCell("B2")))
	v := New(screen, sheet, navigation.NewEngine(sheet), view, opts...)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	v.HandleEvent(tcell.NewEventResize(80, 24))
	return v, screen
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func selected(v *Viewer) string {
	return v.Viewport().Selection().Selection().String()
}

func TestResizeFitsViewport(t *testing.T) {
	v, _ := newViewer(t, grid.New())
	rect := v.Viewport().Rectangle()
	if rect.Width() != 720 || rect.Height() != 440 {
		t.Errorf("viewport size = %vx%v, want 720x440", rect.Width(), rect.Height())
	}
}

func TestKeysAndUndo(t *testing.T) {
	v, _ := newViewer(t, grid.New(), WithJournal(history.NewJournal()))

	steps := []struct {
		ev   tcell.Event
		want string
	}{
		{key(tcell.KeyRight, tcell.ModNone), "C2"},
		{key(tcell.KeyRight, tcell.ModShift), "C2:D2"},
		{char('u'), "C2"},
		{key(tcell.KeyCtrlR, tcell.ModCtrl), "C2:D2"},
		{char('j'), "D3"},
		{char('L'), "D3:E3"},
	}
	for i, s := range steps {
		if !v.HandleEvent(s.ev) {
			t.Fatalf("step %d stopped the viewer", i)
		}
		if got := selected(v); got != s.want {
			t.Errorf("step %d: selection = %s, want %s", i, got, s.want)
		}
	}

	if v.HandleEvent(char('q')) {
		t.Error("q should stop the viewer")
	}
}

func TestMouseSelectAndDraw(t *testing.T) {
	sheet := grid.New()
	sheet.SetCell(reference.MustCell("A1"), "hello")
	v, screen := newViewer(t, sheet)
	v.Draw()

	if r, _, _, _ := screen.GetContent(8, 1); r != 'h' { //nolint:staticcheck // GetContent is the simulation API
		t.Errorf("A1 drawn as %q, want 'h'", r)
	}
	if r, _, _, _ := screen.GetContent(9, 0); r != 'A' { //nolint:staticcheck
		t.Errorf("column header drawn as %q, want 'A'", r)
	}
	if _, _, style, _ := screen.GetContent(18, 2); style != styleSelected { //nolint:staticcheck
		t.Error("selected cell B2 not highlighted")
	}

	v.HandleEvent(tcell.NewEventMouse(20, 3, tcell.Button1, tcell.ModNone))
	if got := selected(v); got != "B3" {
		t.Errorf("click selected %s, want B3", got)
	}
	if !strings.Contains(v.Status(), "select cell B3") {
		t.Errorf("status = %q", v.Status())
	}

	v.HandleEvent(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone))
	if got := selected(v); got != "B3" {
		t.Errorf("click in the gutter changed the selection to %s", got)
	}
}

func TestKeyNavigation(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{key(tcell.KeyLeft, tcell.ModNone), "left column"},
		{key(tcell.KeyUp, tcell.ModShift), "extend-up row"},
		{key(tcell.KeyRight, tcell.ModCtrl), "right 720px"},
		{key(tcell.KeyDown, tcell.ModCtrl|tcell.ModShift), "extend-down 440px"},
		{key(tcell.KeyPgDn, tcell.ModNone), "down 440px"},
		{key(tcell.KeyPgUp, tcell.ModNone), "up 440px"},
		{char('h'), "left column"},
		{char('K'), "extend-up row"},
	}
	for _, tt := range tests {
		n, ok := keyNavigation(tt.ev, 720, 440)
		if !ok || n.Text() != tt.want {
			t.Errorf("keyNavigation(%v) = %v, %v; want %s", tt.ev.Name(), n, ok, tt.want)
		}
	}
	if _, ok := keyNavigation(char('x'), 720, 440); ok {
		t.Error("x should not navigate")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"日本語", 4, "日本"},
		{"éx", 1, "é"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sheet := grid.New()
	rect, _ := viewport.NewRectangle(reference.MustCell("A1"), 0, 0, 100, 100)
	v := New(tcell.NewSimulationScreen(""), sheet, navigation.NewEngine(sheet), viewport.New(rect, selection.AnchoredSelection{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
