package tui

import (
	"time"

	"github.com/agbru/coinflip/internal/report"
)

// ProgressMsg carries one worker's progress and the new overall average.
type ProgressMsg struct {
	WorkerIndex     int
	Value           float64
	AverageProgress float64
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// RunCompleteMsg signals that a simulation run has finished, successfully or
// not, and carries everything the dashboard needs to present the outcome.
type RunCompleteMsg struct {
	Stats      report.Stats
	Duration   time.Duration
	OutputFile string
	Err        error
	ExitCode   int
	Generation uint64
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// TickMsg drives periodic refresh of the elapsed time and system stats.
type TickMsg time.Time

// ContextCancelledMsg signals that the parent context was cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
