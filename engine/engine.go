package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/bar-pulse/internal/format"
	"gitlab.com/tinyland/lab/bar-pulse/metrics"
)

const (
	// Separator joins rendered metric segments in the status line.
	Separator = " | "

	// DisplayBudget caps the rendered line length. Overflow is truncated
	// to DisplayBudget-3 characters plus a three-dot marker.
	DisplayBudget = 120

	// DiskPath is the volume whose free space is reported.
	DiskPath = "/"
)

// GPUSampler reads GPU utilization on platforms that expose it. A false
// second return value means no reading is available, which is a normal
// outcome rather than a failure.
type GPUSampler interface {
	Sample(ctx context.Context) (pct float64, ok bool)
}

// Engine orchestrates one sampling-and-rendering pass per tick: it reads
// the module selection, queries each enabled metric through the provider,
// folds per-metric failures into placeholders, and stores the assembled
// line for the host shell to read.
//
// A single mutex serializes ticks, so timer-driven and manual-refresh
// triggers can share one code path without overlapping. Reading the current
// line is safe from any goroutine.
type Engine struct {
	mu        sync.Mutex
	provider  metrics.Provider
	gpu       GPUSampler
	selection *Selection
	rates     *RateTracker
	logger    *slog.Logger

	// idle is shown when no module produces output (e.g. all disabled).
	idle string

	// line is the current rendered output, overwritten each tick.
	line string

	// cpuWarm flips after the first successful CPU read. A cold first
	// reading of exactly 0 triggers one immediate re-sample; this also
	// suppresses a genuinely idle 0% on the very first tick, a documented
	// quirk carried over deliberately.
	cpuWarm bool

	// now is the clock used for rate calculation, overridable for tests.
	now func() time.Time
}

// New creates an Engine. gpu may be nil, in which case the GPU module
// always renders as unavailable. If logger is nil, a no-op logger is used.
func New(provider metrics.Provider, gpu GPUSampler, selection *Selection, idle string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		provider:  provider,
		gpu:       gpu,
		selection: selection,
		rates:     NewRateTracker(),
		logger:    logger,
		idle:      idle,
		line:      idle,
		now:       time.Now,
	}
}

// Selection returns the engine's module selection state.
func (e *Engine) Selection() *Selection {
	return e.selection
}

// Line returns the most recently rendered status line.
func (e *Engine) Line() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.line
}

// Tick runs one sampling-and-rendering pass and returns the new line.
// Timer ticks and manual refresh requests both call this same routine.
//
// Every renderer failure is recovered here: the failing metric contributes
// its placeholder and the remaining metrics render normally. A tick never
// fails as a whole.
func (e *Engine) Tick(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var parts []string
	for _, key := range DisplayOrder {
		if !e.selection.Enabled(key) {
			continue
		}

		text, err := e.render(ctx, key)
		if err != nil {
			e.logger.Warn("metric render failed",
				"metric", string(key),
				"error", err,
			)
			text = placeholders[key]
		}
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}

	line := format.TruncateWithEllipsis(strings.Join(parts, Separator), DisplayBudget)
	if line == "" {
		line = e.idle
	}
	e.line = line
	return line
}

// render dispatches to the renderer for a single metric. Each renderer
// returns either a short display segment or an error; the caller converts
// errors into per-metric placeholders.
func (e *Engine) render(ctx context.Context, key MetricKey) (string, error) {
	switch key {
	case KeyCPU:
		return e.renderCPU(ctx)
	case KeyMem:
		return e.renderMem(ctx)
	case KeyNet:
		return e.renderNet(ctx)
	case KeyDisk:
		return e.renderDisk(ctx)
	case KeyBattery:
		return e.renderBattery(ctx)
	case KeyGPU:
		return e.renderGPU(ctx), nil
	}
	return "", nil
}

func (e *Engine) renderCPU(ctx context.Context) (string, error) {
	pct, err := e.provider.CPUPercent(ctx)
	if err != nil {
		return "", err
	}

	// Many OS counters report exactly 0 before their first delta window
	// has elapsed; re-sample once so startup does not show a misleading 0%.
	if pct == 0 && !e.cpuWarm {
		pct, err = e.provider.CPUPercent(ctx)
		if err != nil {
			return "", err
		}
	}
	e.cpuWarm = true

	return format.Percent("CPU", pct), nil
}

func (e *Engine) renderMem(ctx context.Context) (string, error) {
	pct, err := e.provider.MemPercent(ctx)
	if err != nil {
		return "", err
	}
	return format.Percent("RAM", pct), nil
}

func (e *Engine) renderNet(ctx context.Context) (string, error) {
	sent, recv, err := e.provider.NetCounters(ctx)
	if err != nil {
		return "", err
	}
	up, down := e.rates.Sample(sent, recv, e.now())
	return "↑" + format.Rate(up) + " ↓" + format.Rate(down), nil
}

func (e *Engine) renderDisk(ctx context.Context) (string, error) {
	free, err := e.provider.DiskFree(ctx, DiskPath)
	if err != nil {
		return "", err
	}
	return "Disk " + format.Bytes(float64(free)) + " free", nil
}

func (e *Engine) renderBattery(ctx context.Context) (string, error) {
	state, err := e.provider.Battery(ctx)
	if err != nil {
		return "", err
	}
	if state == nil {
		// No battery reported: a desktop on mains, not a failure.
		return "AC power", nil
	}

	text := format.Percent("Bat", state.Percent)
	if state.Plugged {
		text += "⚡︎"
	}
	return text, nil
}

// renderGPU never returns an error: GPU sampling is best-effort and every
// failure mode is the defined "unavailable" outcome.
func (e *Engine) renderGPU(ctx context.Context) string {
	if e.gpu == nil {
		return "GPU n/a"
	}
	pct, ok := e.gpu.Sample(ctx)
	if !ok {
		return "GPU n/a"
	}
	return format.Percent("GPU", pct)
}

// Compile-time interface compliance check.
var _ GPUSampler = (*metrics.GPUSampler)(nil)
