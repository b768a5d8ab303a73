package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridnav/internal/navigation"
)

// command is a viewer action that is not a navigation.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdUndo
	cmdRedo
)

var arrowDirections = map[tcell.Key]navigation.Direction{
	tcell.KeyLeft:  navigation.Left,
	tcell.KeyRight: navigation.Right,
	tcell.KeyUp:    navigation.Up,
	tcell.KeyDown:  navigation.Down,
}

var runeDirections = map[rune]navigation.Direction{
	'h': navigation.Left,
	'l': navigation.Right,
	'k': navigation.Up,
	'j': navigation.Down,
}

// keyNavigation maps a key to a navigation. Arrows and hjkl move one
// column or row; with shift (or HJKL) they extend the selection. Ctrl+arrow
// and PgUp/PgDn scroll a page of pageWidth or pageHeight pixels.
func keyNavigation(ev *tcell.EventKey, pageWidth, pageHeight int) (navigation.Navigation, bool) {
	mod := ev.Modifiers()
	extend := mod&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		dir := arrowDirections[ev.Key()]
		if mod&tcell.ModCtrl != 0 {
			page := pageWidth
			if !dir.Horizontal() {
				page = pageHeight
			}
			return navigation.NewPixels(dir, page, extend), true
		}
		return navigation.NewUnit(dir, extend), true
	case tcell.KeyPgDn:
		return navigation.NewPixels(navigation.Down, pageHeight, extend), true
	case tcell.KeyPgUp:
		return navigation.NewPixels(navigation.Up, pageHeight, extend), true
	case tcell.KeyRune:
		r := ev.Rune()
		if dir, ok := runeDirections[r]; ok {
			return navigation.NewUnit(dir, false), true
		}
		if dir, ok := runeDirections[r+('a'-'A')]; ok {
			return navigation.NewUnit(dir, true), true
		}
	}
	return nil, false
}

func keyCommand(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyCtrlR:
		return cmdRedo
	case tcell.KeyRune:
		ctrl := ev.Modifiers()&tcell.ModCtrl != 0
		switch ev.Rune() {
		case 'q':
			return cmdQuit
		case 'u':
			return cmdUndo
		case 'r':
			if ctrl {
				return cmdRedo
			}
		case 'c':
			if ctrl {
				return cmdQuit
			}
		}
	}
	return cmdNone
}
