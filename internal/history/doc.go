// Package history keeps an undoable journal of applied navigations.
//
// Each recorded Entry holds the viewport before and after one or more
// navigations. Undo returns the entry whose Before state should be
// restored; Redo returns the entry whose After state should be restored.
// Navigations applied between BeginGroup and EndGroup form a single entry.
//
//	j := history.NewJournal(history.WithMaxEntries(500))
//	v, _ = j.Apply(engine, v, nav)
//	if e, err := j.Undo(); err == nil {
//		v = e.Before()
//	}
//
// Every journal has a session id, and every entry its own id, so entries
// from several journals can be told apart when exported.
package history
