package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridnav/internal/navigation"
	"github.com/dshills/gridnav/internal/reference"
)

var directions = map[string]navigation.Direction{
	"left":  navigation.Left,
	"right": navigation.Right,
	"up":    navigation.Up,
	"down":  navigation.Down,
}

func (s *State) emit(n navigation.Navigation) {
	s.emitted = append(s.emitted, n)
}

// installNav registers the nav module. nav.<dir>() emits a unit move and
// nav.<dir>(px) a pixel move; extend_<dir> variants extend the selection.
func (s *State) installNav() {
	funcs := map[string]lua.LGFunction{
		"select": s.navSelect,
		"run":    s.navRun,
		"count": func(L *lua.LState) int {
			L.Push(lua.LNumber(len(s.emitted)))
			return 1
		},
	}
	for name, dir := range directions {
		funcs[name] = s.navMove(dir, false)
		funcs["extend_"+name] = s.navMove(dir, true)
	}
	s.L.SetGlobal("nav", s.L.SetFuncs(s.L.NewTable(), funcs))
}

func (s *State) navMove(dir navigation.Direction, extend bool) lua.LGFunction {
	return func(L *lua.LState) int {
		s.tick(L)
		if L.GetTop() == 0 || L.Get(1) == lua.LNil {
			s.emit(navigation.NewUnit(dir, extend))
			return 0
		}
		s.emit(navigation.NewPixels(dir, L.CheckInt(1), extend))
		return 0
	}
}

// navSelect selects a cell, column or row given as reference text.
func (s *State) navSelect(L *lua.LState) int {
	s.tick(L)
	text := L.CheckString(1)
	target, err := reference.ParseSelection(text)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	n, err := navigation.NewSelect(target)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	s.emit(n)
	return 0
}

// navRun emits a textual navigation list.
func (s *State) navRun(L *lua.LState) int {
	s.tick(L)
	list, err := navigation.ParseList(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	s.emitted = append(s.emitted, list.Items()...)
	return 0
}

// installGrid registers the read-only grid module. Without a sheet every
// grid function raises an error.
func (s *State) installGrid() {
	s.L.SetGlobal("grid", s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"width":  s.gridWidth,
		"height": s.gridHeight,
		"hidden": s.gridHidden,
		"label":  s.gridLabel,
	}))
}

func (s *State) needSheet(L *lua.LState) {
	s.tick(L)
	if s.sheet == nil {
		L.RaiseError("no sheet loaded")
	}
}

func (s *State) gridWidth(L *lua.LState) int {
	s.needSheet(L)
	c, err := reference.ParseColumn(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LNumber(s.sheet.ColumnWidth(c)))
	return 1
}

func (s *State) gridHeight(L *lua.LState) int {
	s.needSheet(L)
	r, err := reference.ParseRow(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LNumber(s.sheet.RowHeight(r)))
	return 1
}

// gridHidden accepts a column ("C") or a row ("4").
func (s *State) gridHidden(L *lua.LState) int {
	s.needSheet(L)
	sel, err := reference.ParseSelection(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	switch v := sel.(type) {
	case reference.Column:
		L.Push(lua.LBool(s.sheet.IsColumnHidden(v)))
	case reference.Row:
		L.Push(lua.LBool(s.sheet.IsRowHidden(v)))
	default:
		L.ArgError(1, fmt.Sprintf("%s is not a column or row", sel))
		return 0
	}
	return 1
}

// gridLabel returns the text of a label's resolved target, or nil and an
// error message.
func (s *State) gridLabel(L *lua.LState) int {
	s.needSheet(L)
	label, err := reference.ParseLabel(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	target, err := s.sheet.ResolveLabel(label)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(target.String()))
	return 1
}
