package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridnav/internal/logging"
	"github.com/dshills/gridnav/internal/navigation"
)

// Default limits.
const (
	DefaultTimeout          = 5 * time.Second
	DefaultInstructionLimit = 1_000_000
)

// State is a sandboxed Lua interpreter that turns scripts into navigation
// lists. Runs are serialized.
type State struct {
	L  *lua.LState
	mu sync.Mutex

	timeout          time.Duration
	instructionLimit int64
	sheet            navigation.Context
	logger           *logging.Logger

	emitted      []navigation.Navigation
	instructions int64
	limitHit     bool
	closed       bool
}

// Option configures a State.
type Option func(*State)

// WithTimeout bounds each run. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithInstructionLimit bounds the API calls of each run. Zero disables the
// limit.
func WithInstructionLimit(limit int64) Option {
	return func(s *State) {
		if limit >= 0 {
			s.instructionLimit = limit
		}
	}
}

// WithSheet exposes the sheet to scripts through the grid module.
func WithSheet(sheet navigation.Context) Option {
	return func(s *State) {
		s.sheet = sheet
	}
}

// WithLogger sets the logger that receives print output.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a sandboxed state with the nav and grid modules
// installed.
func NewState(opts ...Option) *State {
	s := &State{
		timeout:          DefaultTimeout,
		instructionLimit: DefaultInstructionLimit,
		logger:           logging.Null,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("script")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.installSandbox()
	s.installNav()
	s.installGrid()
	return s
}

// openSafeLibraries opens the libraries that cannot reach the host.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func (s *State) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		s.logger.Info("%s", strings.Join(parts, "\t"))
		return 0
	}))
}

// tick counts one API call and raises a Lua error past the limit.
func (s *State) tick(L *lua.LState) {
	s.instructions++
	if s.instructionLimit > 0 && s.instructions > s.instructionLimit {
		s.limitHit = true
		L.RaiseError("%v", ErrInstructionLimit)
	}
}

// Run executes code and returns the navigations it emitted.
func (s *State) Run(ctx context.Context, code string) (navigation.List, error) {
	return s.run(ctx, "<script>", strings.NewReader(code))
}

// RunFile executes the script at path.
func (s *State) RunFile(ctx context.Context, path string) (navigation.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return navigation.List{}, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return s.run(ctx, path, f)
}

func (s *State) run(ctx context.Context, source string, r io.Reader) (list navigation.List, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return navigation.List{}, ErrStateClosed
	}

	s.emitted = nil
	s.instructions = 0
	s.limitHit = false

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			list, err = navigation.List{}, &ScriptError{Source: source, Err: fmt.Errorf("lua panic: %v", r)}
		}
	}()

	fn, err := s.L.Load(r, source)
	if err != nil {
		return navigation.List{}, &ScriptError{Source: source, Err: err}
	}
	s.L.Push(fn)
	if err := s.L.PCall(0, lua.MultRet, nil); err != nil {
		s.L.SetTop(0)
		switch {
		case s.limitHit:
			return navigation.List{}, fmt.Errorf("%s: %w", source, ErrInstructionLimit)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return navigation.List{}, fmt.Errorf("%s: %w", source, ErrTimeout)
		case ctx.Err() != nil:
			return navigation.List{}, fmt.Errorf("%s: %w", source, ctx.Err())
		}
		return navigation.List{}, &ScriptError{Source: source, Err: err}
	}
	s.L.SetTop(0)

	s.logger.Debug("%s emitted %d navigations", source, len(s.emitted))
	return navigation.NewList(s.emitted...), nil
}

// Close releases the interpreter.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
