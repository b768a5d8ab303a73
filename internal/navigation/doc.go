// Package navigation turns user gestures into changes of a viewport.
//
// A Navigation is one immutable command: a unit move or extend by a visible
// column or row, a pixel scroll or pixel extend, or a click select of a cell,
// column or row. Every command has a text form and Parse reads it back:
//
//	left column        extend-right column
//	down 20px          extend-up -40px
//	select cell B7     select column C     select row 3
//
// A List is an ordered sequence of commands, written comma separated.
// Compact removes commands that cancel out.
//
// The Engine folds commands over a viewport.Viewport. Navigation is advisory:
// a command that cannot apply returns false and the viewport unchanged.
//
//	engine := navigation.NewEngine(sheet, navigation.WithLogger(logger))
//	list, _ := navigation.ParseList("select cell B2,extend-right column")
//	final := engine.Replay(start, list)
package navigation
