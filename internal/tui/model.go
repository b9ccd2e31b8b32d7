// Package tui implements the interactive dashboard mode: per-worker progress
// bars, live system stats, and the run summary, rendered with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	pbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/coinflip/internal/config"
	apperrors "github.com/agbru/coinflip/internal/errors"
	"github.com/agbru/coinflip/internal/format"
	"github.com/agbru/coinflip/internal/orchestration"
	"github.com/agbru/coinflip/internal/report"
	"github.com/agbru/coinflip/internal/streak"
	"github.com/agbru/coinflip/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	keymap KeyMap

	ExecutionState

	parentCtx context.Context
	config    config.AppConfig
	version   string
	ref       *programRef

	bars      []pbar.Model
	fractions []float64
	average   float64

	startTime time.Time
	cpu       float64
	mem       float64

	result *RunCompleteMsg
	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	bars := make([]pbar.Model, cfg.Workers)
	for i := range bars {
		bars[i] = pbar.New(pbar.WithDefaultGradient(), pbar.WithoutPercentage())
	}

	return Model{
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		version:   version,
		ref:       &programRef{},
		bars:      bars,
		fractions: make([]float64, cfg.Workers),
		startTime: time.Now(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 20
		if barWidth < 10 {
			barWidth = 10
		}
		for i := range m.bars {
			m.bars[i].Width = barWidth
		}
		return m, nil

	case ProgressMsg:
		if msg.WorkerIndex >= 0 && msg.WorkerIndex < len(m.fractions) {
			m.fractions[msg.WorkerIndex] = msg.Value
		}
		m.average = msg.AverageProgress
		return m, nil

	case ProgressDoneMsg:
		for i := range m.fractions {
			m.fractions[i] = 1.0
		}
		m.average = 1.0
		return m, nil

	case SysStatsMsg:
		m.cpu = msg.CPUPercent
		m.mem = msg.MemPercent
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.result = &msg
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous run
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Reset):
		if !m.done {
			return m, nil
		}

		// New context and generation for the restarted run.
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.result = nil
		m.average = 0
		for i := range m.fractions {
			m.fractions[i] = 0
		}
		m.startTime = time.Now()

		return m, tea.Batch(
			tickCmd(),
			startRunCmd(m.ref, m.ctx, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := headerStyle.Render("coinflip") + " " +
		versionStyle.Render(m.version) + "  " +
		elapsedStyle.Render(format.FormatExecutionDuration(time.Since(m.startTime).Round(time.Second)))

	rows := make([]string, 0, len(m.bars)+2)
	for i, bar := range m.bars {
		rows = append(rows, fmt.Sprintf("%s %s",
			workerLabelStyle.Render(fmt.Sprintf("worker %2d", i)),
			bar.ViewAs(m.fractions[i])))
	}
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("%s %s",
		metricLabelStyle.Render("overall  "),
		metricValueStyle.Render(fmt.Sprintf("%.2f%%", m.average*100))))
	body := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	stats := metricLabelStyle.Render("CPU ") + metricValueStyle.Render(fmt.Sprintf("%.0f%%", m.cpu)) +
		metricLabelStyle.Render("  MEM ") + metricValueStyle.Render(fmt.Sprintf("%.0f%%", m.mem))

	var outcome string
	if m.result != nil {
		outcome = m.renderOutcome()
	}

	footer := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit  ") +
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, stats, outcome, footer)
}

func (m Model) renderOutcome() string {
	r := m.result
	if r.Err != nil {
		return statusErrorStyle.Render(fmt.Sprintf("✗ %v", r.Err))
	}
	summary := fmt.Sprintf("✓ %s flips in %s (%s), longest heads streak %d",
		format.FormatCount(r.Stats.Flips),
		format.FormatExecutionDuration(r.Duration),
		format.FormatThroughput(r.Stats.Flips, r.Duration),
		r.Stats.LongestChain)
	saved := metricLabelStyle.Render("saved to ") + metricValueStyle.Render(r.OutputFile)
	return lipgloss.JoinVertical(lipgloss.Left, statusDoneStyle.Render(summary), saved)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunCmd returns a tea.Cmd that launches the simulation, merges the
// worker histograms, and writes the results file.
func startRunCmd(ref *programRef, ctx context.Context, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}

		if err := report.CheckDestination(cfg.OutputFile); err != nil {
			return RunCompleteMsg{Err: err, ExitCode: exitCodeForOutput(err), Generation: gen}
		}

		plan := streak.BatchSizes(cfg.Trials, cfg.Workers)
		startTime := time.Now()
		results := orchestration.ExecuteTrials(ctx, plan, orchestration.Options{Seed: cfg.Seed}, reporter, io.Discard)
		duration := time.Since(startTime)

		hist, err := orchestration.MergeResults(results)
		if err != nil {
			code := apperrors.ExitErrorGeneric
			if apperrors.IsContextError(err) {
				code = apperrors.ExitCodeForContext(err)
			}
			return RunCompleteMsg{Err: err, Duration: duration, ExitCode: code, Generation: gen}
		}

		if err := report.WriteCSV(cfg.OutputFile, hist); err != nil {
			return RunCompleteMsg{Err: err, Duration: duration, ExitCode: exitCodeForOutput(err), Generation: gen}
		}

		return RunCompleteMsg{
			Stats:      report.Summarize(hist),
			Duration:   duration,
			OutputFile: cfg.OutputFile,
			ExitCode:   apperrors.ExitSuccess,
			Generation: gen,
		}
	}
}

// exitCodeForOutput maps a results-file error to the process exit code: the
// existing-destination refusal keeps its dedicated code, any other I/O
// failure is a generic error.
func exitCodeForOutput(err error) int {
	if errors.Is(err, report.ErrOutputExists) {
		return apperrors.ExitErrorExists
	}
	return apperrors.ExitErrorGeneric
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
