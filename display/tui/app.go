// Package tui implements the interactive host shell for bar-pulse using
// Bubbletea's Elm architecture. It shows the current status line, a module
// checklist, and a help footer, and exposes the full command surface:
// per-module toggles, refresh now, save settings, and quit.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/bar-pulse/config"
	"gitlab.com/tinyland/lab/bar-pulse/engine"
)

// tickMsg fires when the refresh timer elapses.
type tickMsg time.Time

// lineMsg carries a freshly rendered status line back into the update loop.
type lineMsg string

// Model is the root Bubbletea model for the bar-pulse shell.
type Model struct {
	engine     *engine.Engine
	cfg        *config.Config
	configPath string
	interval   time.Duration
	width      int
	line       string
	statusMsg  string
	help       help.Model
	logger     *slog.Logger
}

// NewModel creates the shell model around an engine and its loaded config.
// If logger is nil, a no-op logger is used.
func NewModel(eng *engine.Engine, cfg *config.Config, configPath string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		engine:     eng,
		cfg:        cfg,
		configPath: configPath,
		interval:   cfg.UpdateInterval(),
		line:       eng.Line(),
		help:       help.New(),
		logger:     logger,
	}
}

// Init implements tea.Model: run an immediate sampling pass and arm the
// refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.scheduleTick())
}

// refresh runs one sampling pass off the update loop. Engine ticks are
// internally serialized, so a manual refresh racing a timer tick cannot
// interleave with it.
func (m Model) refresh() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		return lineMsg(eng.Tick(context.Background()))
	}
}

// scheduleTick arms the next timer tick.
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.refresh(), m.scheduleTick())

	case lineMsg:
		m.line = string(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes the shell's command surface.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Refresh):
		m.statusMsg = ""
		return m, m.refresh()

	case key.Matches(msg, keys.Save):
		m.statusMsg = m.saveSettings()
		return m, nil

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if metric, ok := toggleTarget(msg.String()); ok {
			enabled := m.engine.Selection().Toggle(metric)
			m.logger.Debug("module toggled", "metric", string(metric), "enabled", enabled)
			// Re-render immediately so the line reflects the new selection.
			return m, m.refresh()
		}
	}

	return m, nil
}

// saveSettings snapshots the current selection into the config and persists
// it, returning a status message for the footer.
func (m Model) saveSettings() string {
	m.cfg.Modules = m.engine.Selection().Snapshot()
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.logger.Error("settings save failed", "path", m.configPath, "error", err)
		return "save failed: " + err.Error()
	}
	m.logger.Info("settings saved", "path", m.configPath)
	return "settings saved to " + m.configPath
}

// toggleTarget maps a pressed digit to its metric in display order.
func toggleTarget(pressed string) (engine.MetricKey, bool) {
	if len(pressed) != 1 || pressed[0] < '1' || pressed[0] > '6' {
		return "", false
	}
	idx := int(pressed[0] - '1')
	if idx >= len(engine.DisplayOrder) {
		return "", false
	}
	return engine.DisplayOrder[idx], true
}

// View implements tea.Model. It renders the title, the status line box, the
// module checklist, and the footer with status message and help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("bar-pulse"))
	b.WriteString("\n\n")
	b.WriteString(styleLine.Render(m.line))
	b.WriteString("\n\n")
	b.WriteString(m.renderChecklist())
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString(styleStatus.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))

	return b.String()
}

// renderChecklist renders one row per metric in display order, numbered to
// match the toggle keys.
func (m Model) renderChecklist() string {
	sel := m.engine.Selection()

	var rows []string
	for i, metric := range engine.DisplayOrder {
		mark := "[ ]"
		style := styleDisabled
		if sel.Enabled(metric) {
			mark = "[x]"
			style = styleEnabled
		}
		row := fmt.Sprintf("%s %d. %s", mark, i+1, engine.Labels[metric])
		rows = append(rows, style.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
