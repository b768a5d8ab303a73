// Package main is the gridnav command: it replays navigations over a sheet
// and prints the resulting viewport, or opens an interactive viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/dshills/gridnav/internal/config"
	"github.com/dshills/gridnav/internal/grid"
	"github.com/dshills/gridnav/internal/history"
	"github.com/dshills/gridnav/internal/logging"
	"github.com/dshills/gridnav/internal/navigation"
	"github.com/dshills/gridnav/internal/script"
	"github.com/dshills/gridnav/internal/selection"
	"github.com/dshills/gridnav/internal/term"
	"github.com/dshills/gridnav/internal/viewport"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath  string
	sheetPath   string
	home        string
	selection   string
	scriptPath  string
	logLevel    string
	interactive bool
	compact     bool
	showVersion bool
	navigations []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.sheetPath, "sheet", "", "Sheet fixture file (.toml, .yaml)")
	fs.StringVar(&opts.home, "home", "", "Viewport home cell or label")
	fs.StringVar(&opts.selection, "select", "", `Initial selection, e.g. "B2" or "B2:D9 bottom-right"`)
	fs.StringVar(&opts.scriptPath, "script", "", "Lua script that emits navigations")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.interactive, "interactive", false, "Open the terminal viewer after replaying")
	fs.BoolVar(&opts.interactive, "i", false, "Open the terminal viewer (shorthand)")
	fs.BoolVar(&opts.compact, "compact", false, "Remove redundant navigations before replaying")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "gridnav - spreadsheet viewport navigation\n\n")
		fmt.Fprintf(stderr, "Usage: gridnav [options] [navigation, ...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  gridnav -select B2 right column, down 250px\n")
		fmt.Fprintf(stderr, "  gridnav -sheet budget.toml -home Total -i\n")
		fmt.Fprintf(stderr, "  gridnav -script walk.lua -compact\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			return opts, err
		}
	}
	opts.navigations = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "gridnav %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if err := replay(ctx, opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func replay(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: stderr, Prefix: "gridnav"})

	var cfgOpts []config.Option
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(opts.configPath))
	}
	manager := config.NewManager(append(cfgOpts, config.WithLogger(logger))...)
	cfg, err := manager.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyLevel := func(c config.Config) {
		if opts.logLevel != "" {
			level, _ := logging.ParseLevel(opts.logLevel)
			logger.SetLevel(level)
			return
		}
		logger.SetLevel(c.LogLevel())
	}
	applyLevel(cfg)

	sheet, err := loadSheet(opts, cfg)
	if err != nil {
		return err
	}
	view, err := initialViewport(opts, cfg)
	if err != nil {
		return err
	}

	list, err := navigations(ctx, opts, cfg, sheet, logger)
	if err != nil {
		return err
	}

	engine := navigation.NewEngine(sheet, navigation.WithLogger(logger))
	journal := history.NewJournal(history.WithMaxEntries(cfg.History.MaxEntries))
	logger.Debug("session %s", journal.Session())

	steps := engine.Trace(view, list)
	printSteps(stdout, steps)
	for _, s := range steps {
		journal.Record(s)
		view = s.After
	}

	if opts.interactive {
		if manager.Path() != "" {
			manager.OnChange(applyLevel)
			if err := manager.Watch(ctx); err != nil {
				logger.Warn("not watching config: %v", err)
			}
			defer manager.Close()
		}
		viewer, err := term.NewTerminal(sheet, engine, view, term.WithJournal(journal), term.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		view, err = viewer.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	return printState(stdout, view, sheet)
}

func loadSheet(opts options, cfg config.Config) (*grid.Sheet, error) {
	gridOpts := []grid.Option{
		grid.WithDefaultSize(cfg.Grid.DefaultColumnWidth, cfg.Grid.DefaultRowHeight),
		grid.WithLabelDepth(cfg.Labels.MaxDepth),
	}
	path := opts.sheetPath
	if path == "" {
		path = cfg.Grid.Sheet
	}
	if path != "" {
		sheet, err := grid.Load(path, gridOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading sheet: %w", err)
		}
		return sheet, nil
	}

	sheet := grid.New(gridOpts...)
	if err := sheet.Freeze(cfg.Grid.FrozenColumns, cfg.Grid.FrozenRows); err != nil {
		return nil, err
	}
	return sheet, nil
}

func initialViewport(opts options, cfg config.Config) (viewport.Viewport, error) {
	if opts.home != "" {
		cfg.Viewport.Home = opts.home
	}
	home, err := cfg.HomeSelection()
	if err != nil {
		return viewport.Viewport{}, fmt.Errorf("home: %w", err)
	}
	rect, err := viewport.NewRectangle(home, 0, 0, cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		return viewport.Viewport{}, err
	}

	var sel selection.AnchoredSelection
	if opts.selection != "" {
		sel, err = selection.Parse(opts.selection)
		if err != nil {
			return viewport.Viewport{}, fmt.Errorf("selection: %w", err)
		}
	}
	return viewport.New(rect, sel), nil
}

// navigations collects the command line list followed by anything the
// script emits.
func navigations(ctx context.Context, opts options, cfg config.Config, sheet *grid.Sheet, logger *logging.Logger) (navigation.List, error) {
	list, err := navigation.ParseList(strings.Join(opts.navigations, " "))
	if err != nil {
		return navigation.List{}, err
	}

	if opts.scriptPath != "" {
		state := script.NewState(
			script.WithTimeout(cfg.Script.Timeout),
			script.WithInstructionLimit(int64(cfg.Script.InstructionLimit)),
			script.WithSheet(sheet),
			script.WithLogger(logger),
		)
		defer state.Close()
		emitted, err := state.RunFile(ctx, opts.scriptPath)
		if err != nil {
			return navigation.List{}, err
		}
		list = list.Append(emitted.Items()...)
	}

	if opts.compact {
		list = list.Compact()
	}
	return list, nil
}

func printSteps(w io.Writer, steps []navigation.Step) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range steps {
		result := "(ignored)"
		if s.Applied {
			result = describe(s.Before) + " -> " + describe(s.After)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, s.Navigation.Text(), result)
	}
	_ = tw.Flush()
}

func describe(v viewport.Viewport) string {
	if !v.HasSelection() {
		return "home " + v.Rectangle().Home().String()
	}
	return v.Selection().String()
}

func printState(w io.Writer, v viewport.Viewport, sheet *grid.Sheet) error {
	windows, err := viewport.ComputeWindows(v.Rectangle(), true, nil, sheet)
	if err != nil {
		return err
	}

	sel, anchor := "none", "none"
	if v.HasSelection() {
		sel = v.Selection().Selection().String()
		anchor = v.Selection().Anchor().String()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "selection:\t%s\n", sel)
	fmt.Fprintf(tw, "anchor:\t%s\n", anchor)
	fmt.Fprintf(tw, "home:\t%s\n", v.Rectangle().Home())
	fmt.Fprintf(tw, "windows:\t%s\n", windows)
	return tw.Flush()
}
