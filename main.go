// bar-pulse is a live system status line for the terminal.
//
// It samples CPU, memory, network throughput, disk space, battery, and GPU
// load, and renders them as a single bounded-length line. The default mode
// is an interactive Bubbletea shell with per-module toggles; -line prints
// one rendered line and exits, for embedding in prompts or status bars.
//
// Usage:
//
//	bar-pulse [flags]
//
// Flags:
//
//	-line           Print one status line to stdout and exit
//	-config string  Path to configuration file (default: ~/.config/bar-pulse/config.json)
//	-verbose        Enable verbose logging to stderr
//	-version        Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/bar-pulse/config"
	"gitlab.com/tinyland/lab/bar-pulse/display/tui"
	"gitlab.com/tinyland/lab/bar-pulse/engine"
	"gitlab.com/tinyland/lab/bar-pulse/internal/format"
	"gitlab.com/tinyland/lab/bar-pulse/metrics"
)

// idleName is shown when every module is disabled or every sample fails.
const idleName = "bar-pulse"

// lineWarmup separates the two sampling passes of -line mode. Rate metrics
// need a prior baseline; a single cold pass would always print 0B/s.
const lineWarmup = 250 * time.Millisecond

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/bar-pulse/config.json)")
		lineMode    = flag.Bool("line", false, "Print one status line to stdout and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging to stderr")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("bar-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	logger := newLogger(*verbose)

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.Load(path, logger)

	selection := engine.NewSelection(cfg.Modules)
	provider := metrics.NewSystemProvider(logger)
	gpu := metrics.NewGPUSampler(logger)
	eng := engine.New(provider, gpu, selection, idleName, logger)

	if *lineMode {
		runLine(eng)
		return
	}

	runTUI(eng, cfg, path, logger)
}

// newLogger returns a text logger on stderr at debug level when verbose is
// set, and a no-op logger otherwise.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// runLine performs the one-shot mode: two sampling passes so rate metrics
// have a baseline, then a single line on stdout clamped to the terminal.
func runLine(eng *engine.Engine) {
	ctx := context.Background()
	eng.Tick(ctx)
	time.Sleep(lineWarmup)
	line := eng.Tick(ctx)

	if width := detectWidth(); width > 0 {
		line = format.TruncateWithEllipsis(line, width)
	}
	fmt.Println(line)
}

// detectWidth returns the terminal width, falling back to the COLUMNS
// environment variable when stdout is not a TTY. Zero means unknown.
func detectWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

// runTUI launches the interactive shell.
func runTUI(eng *engine.Engine, cfg *config.Config, configPath string, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			// Restore the terminal from alt-screen before printing the error.
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "bar-pulse: TUI panic: %v\n", r)
			os.Exit(1)
		}
	}()

	model := tui.NewModel(eng, cfg, configPath, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bar-pulse: %v\n", err)
		os.Exit(1)
	}
}
