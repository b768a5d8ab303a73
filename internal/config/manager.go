package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/gridnav/internal/config/loader"
	"github.com/dshills/gridnav/internal/config/watcher"
	"github.com/dshills/gridnav/internal/logging"
)

// Manager owns the current configuration and reloads it on demand or when
// the config file changes.
type Manager struct {
	mu sync.RWMutex

	path      string
	fs        loader.FileSystem
	envPrefix string
	useEnv    bool
	logger    *logging.Logger

	current  Config
	handlers []func(Config)
	watcher  *watcher.Watcher
}

// Option configures a Manager.
type Option func(*Manager)

// WithFile sets the config file. Its extension selects TOML or YAML.
func WithFile(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithFS reads the config file from fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(m *Manager) {
		if fsys != nil {
			m.fs = fsys
		}
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(m *Manager) {
		m.envPrefix = prefix
	}
}

// WithoutEnv disables the environment layer.
func WithoutEnv() Option {
	return func(m *Manager) {
		m.useEnv = false
	}
}

// WithLogger sets the logger for reload activity.
func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a manager holding the defaults. Call Load to read the
// configured layers.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		useEnv:    true,
		logger:    logging.Null,
		current:   Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithComponent("config")
	return m
}

// Path returns the config file, empty when none is set.
func (m *Manager) Path() string {
	return m.path
}

// Load reads every layer, validates the result and makes it current.
// On error the current configuration is unchanged.
func (m *Manager) Load() (Config, error) {
	defaults, err := Default().ToMap()
	if err != nil {
		return Config{}, err
	}
	loaders := []loader.Loader{loader.MapLoader(defaults)}
	if m.path != "" {
		fl, err := loader.ForPath(m.fs, m.path)
		if err != nil {
			return Config{}, err
		}
		loaders = append(loaders, fl)
	}
	if m.useEnv {
		loaders = append(loaders, loader.NewEnvLoader(m.envPrefix))
	}

	merged, err := loader.MergeAll(loaders...)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	m.mu.Lock()
	m.current = cfg
	m.mu.Unlock()
	return cfg, nil
}

// Current returns the last successfully loaded configuration.
func (m *Manager) Current() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// OnChange registers fn to run after a reload that changed the
// configuration.
func (m *Manager) OnChange(fn func(Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, fn)
}

// Reload loads the layers again and notifies handlers when the result
// differs from the previous configuration.
func (m *Manager) Reload() error {
	before := m.Current()
	cfg, err := m.Load()
	if err != nil {
		m.logger.Warn("reload failed, keeping previous config: %v", err)
		return err
	}
	if cfg == before {
		return nil
	}

	m.logger.Info("reloaded %s", m.path)
	m.mu.RLock()
	handlers := append([]func(Config){}, m.handlers...)
	m.mu.RUnlock()
	for _, fn := range handlers {
		fn(cfg)
	}
	return nil
}

// Watch reloads whenever the config file changes, until ctx is done or
// Close is called.
func (m *Manager) Watch(ctx context.Context, opts ...watcher.Option) error {
	if m.path == "" {
		return fmt.Errorf("watch: no config file: %w", ErrInvalidConfig)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher != nil {
		return nil
	}
	w, err := watcher.New(ctx, append([]watcher.Option{watcher.WithLogger(m.logger)}, opts...)...)
	if err != nil {
		return err
	}
	if err := w.Watch(m.path); err != nil {
		_ = w.Close()
		return err
	}
	w.OnChange(func(watcher.Event) { _ = m.Reload() })
	m.watcher = w
	return nil
}

// Close stops watching.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}
