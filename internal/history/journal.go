package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/gridnav/internal/navigation"
	"github.com/dshills/gridnav/internal/viewport"
)

// Common errors for journal operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds a journal created without WithMaxEntries.
const DefaultMaxEntries = 1000

// Entry is one undo unit.
type Entry struct {
	ID      uuid.UUID
	Session uuid.UUID
	// Name is set for grouped entries.
	Name  string
	Steps []navigation.Step
	Time  time.Time
}

// Before returns the viewport preceding the entry.
func (e Entry) Before() viewport.Viewport {
	return e.Steps[0].Before
}

// After returns the viewport the entry produced.
func (e Entry) After() viewport.Viewport {
	return e.Steps[len(e.Steps)-1].After
}

// List returns the navigations of the entry.
func (e Entry) List() navigation.List {
	items := make([]navigation.Navigation, len(e.Steps))
	for i, s := range e.Steps {
		items[i] = s.Navigation
	}
	return navigation.NewList(items...)
}

// Journal is a bounded undo/redo journal. It is safe for concurrent use.
type Journal struct {
	mu sync.Mutex

	session    uuid.UUID
	undoStack  []*Entry
	redoStack  []*Entry
	maxEntries int
	now        func() time.Time

	grouping  bool
	groupName string
	groupStep []navigation.Step
}

// Option configures a Journal.
type Option func(*Journal)

// WithMaxEntries bounds the undo stack; the oldest entries are dropped
// first. Zero or less means unbounded.
func WithMaxEntries(n int) Option {
	return func(j *Journal) {
		j.maxEntries = n
	}
}

// WithSession sets the session id instead of generating one.
func WithSession(id uuid.UUID) Option {
	return func(j *Journal) {
		j.session = id
	}
}

// WithClock sets the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}

// NewJournal creates an empty journal.
func NewJournal(opts ...Option) *Journal {
	j := &Journal{
		session:    uuid.New(),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Session returns the journal's session id.
func (j *Journal) Session() uuid.UUID {
	return j.session
}

// Record adds an applied step and clears the redo stack. Steps that were
// not applied are not recorded and Record returns false.
func (j *Journal) Record(step navigation.Step) bool {
	if !step.Applied {
		return false
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.grouping {
		j.groupStep = append(j.groupStep, step)
		return true
	}
	j.pushLocked("", []navigation.Step{step})
	return true
}

// Apply applies n through e and records the step.
func (j *Journal) Apply(e *navigation.Engine, v viewport.Viewport, n navigation.Navigation) (viewport.Viewport, bool) {
	after, ok := e.Apply(v, n)
	j.Record(navigation.Step{Navigation: n, Before: v, After: after, Applied: ok})
	return after, ok
}

func (j *Journal) pushLocked(name string, steps []navigation.Step) {
	j.undoStack = append(j.undoStack, &Entry{
		ID:      uuid.New(),
		Session: j.session,
		Name:    name,
		Steps:   steps,
		Time:    j.now(),
	})
	j.redoStack = nil

	if j.maxEntries > 0 && len(j.undoStack) > j.maxEntries {
		excess := len(j.undoStack) - j.maxEntries
		clear(j.undoStack[:excess])
		j.undoStack = j.undoStack[excess:]
	}
}

// Undo pops the newest entry onto the redo stack and returns it. The
// caller restores Entry.Before.
func (j *Journal) Undo() (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.undoStack) == 0 {
		return Entry{}, ErrNothingToUndo
	}
	e := j.undoStack[len(j.undoStack)-1]
	j.undoStack = j.undoStack[:len(j.undoStack)-1]
	j.redoStack = append(j.redoStack, e)
	return *e, nil
}

// Redo moves the last undone entry back onto the undo stack and returns
// it. The caller restores Entry.After.
func (j *Journal) Redo() (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.redoStack) == 0 {
		return Entry{}, ErrNothingToRedo
	}
	e := j.redoStack[len(j.redoStack)-1]
	j.redoStack = j.redoStack[:len(j.redoStack)-1]
	j.undoStack = append(j.undoStack, e)
	return *e, nil
}

// CanUndo reports whether Undo would succeed.
func (j *Journal) CanUndo() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.undoStack) > 0
}

// CanRedo reports whether Redo would succeed.
func (j *Journal) CanRedo() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.redoStack) > 0
}

// UndoCount returns the number of undoable entries.
func (j *Journal) UndoCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.undoStack)
}

// RedoCount returns the number of redoable entries.
func (j *Journal) RedoCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.redoStack)
}

// BeginGroup starts collecting steps into one entry. Nested calls are
// ignored.
func (j *Journal) BeginGroup(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.grouping {
		return
	}
	j.grouping = true
	j.groupName = name
	j.groupStep = nil
}

// EndGroup records the collected steps as one entry. An empty group
// records nothing.
func (j *Journal) EndGroup() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.grouping {
		return
	}
	j.grouping = false
	if len(j.groupStep) > 0 {
		j.pushLocked(j.groupName, j.groupStep)
	}
	j.groupStep = nil
}

// CancelGroup drops the collected steps.
func (j *Journal) CancelGroup() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.grouping = false
	j.groupStep = nil
}

// IsGrouping reports whether a group is open.
func (j *Journal) IsGrouping() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.grouping
}

// Clear empties both stacks and drops any open group.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.undoStack = nil
	j.redoStack = nil
	j.grouping = false
	j.groupStep = nil
}

// Entries returns the undo stack, oldest first.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.undoStack))
	for i, e := range j.undoStack {
		out[i] = *e
	}
	return out
}

// PeekUndo returns the entry Undo would return without removing it.
func (j *Journal) PeekUndo() (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.undoStack) == 0 {
		return Entry{}, false
	}
	return *j.undoStack[len(j.undoStack)-1], true
}

// Navigations returns every navigation on the undo stack in the order it
// was applied.
func (j *Journal) Navigations() navigation.List {
	var items []navigation.Navigation
	for _, e := range j.Entries() {
		for _, s := range e.Steps {
			items = append(items, s.Navigation)
		}
	}
	return navigation.NewList(items...)
}

// Compacted returns Navigations with adjacent opposite moves removed.
func (j *Journal) Compacted() navigation.List {
	return j.Navigations().Compact()
}
