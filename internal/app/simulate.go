package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"time"

	"github.com/agbru/coinflip/internal/cli"
	apperrors "github.com/agbru/coinflip/internal/errors"
	"github.com/agbru/coinflip/internal/format"
	"github.com/agbru/coinflip/internal/logging"
	"github.com/agbru/coinflip/internal/metrics"
	"github.com/agbru/coinflip/internal/orchestration"
	"github.com/agbru/coinflip/internal/report"
	"github.com/agbru/coinflip/internal/server"
	"github.com/agbru/coinflip/internal/streak"
	"github.com/agbru/coinflip/internal/sysmon"
)

// runSimulate orchestrates a plain CLI simulation run: fail-fast destination
// check, worker fan-out, histogram merge, CSV write, summary.
func (a *Application) runSimulate(ctx context.Context, out io.Writer) int {
	// The destination check runs before any simulation work so a doomed run
	// fails before flipping a single coin.
	if err := report.CheckDestination(a.Config.OutputFile); err != nil {
		a.Log.Error("destination check failed", err, logging.String("path", a.Config.OutputFile))
		if errors.Is(err, report.ErrOutputExists) {
			return apperrors.ExitErrorExists
		}
		return apperrors.ExitErrorGeneric
	}

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, interruptSignals...)
	defer stopSignals()

	opts := orchestration.Options{Seed: a.Config.Seed}
	if a.Config.MetricsListen != "" {
		m := server.NewMetrics()
		m.SetActiveWorkers(a.Config.Workers)
		opts.Observer = m
		go m.Serve(ctx, a.Config.MetricsListen, a.Log)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	memBefore := metrics.NewMemoryCollector().Snapshot()

	plan := streak.BatchSizes(a.Config.Trials, a.Config.Workers)
	startTime := time.Now()
	results := orchestration.ExecuteTrials(ctx, plan, opts, progressReporter, progressOut)
	duration := time.Since(startTime)

	hist, err := orchestration.MergeResults(results)
	if err != nil {
		a.Log.Error("simulation failed", err,
			logging.Int("trials", orchestration.TotalTrials(results)),
			logging.String("duration", duration.String()))
		if apperrors.IsContextError(err) {
			return apperrors.ExitCodeForContext(err)
		}
		return apperrors.ExitErrorGeneric
	}

	if err := report.WriteCSV(a.Config.OutputFile, hist); err != nil {
		a.Log.Error("writing results failed", err, logging.String("path", a.Config.OutputFile))
		if errors.Is(err, report.ErrOutputExists) {
			return apperrors.ExitErrorExists
		}
		return apperrors.ExitErrorGeneric
	}

	stats := report.Summarize(hist)
	a.Log.Info("simulation complete",
		logging.Uint64("flips", stats.Flips),
		logging.Int("longest_chain", stats.LongestChain),
		logging.String("duration", format.FormatExecutionDuration(duration)),
		logging.String("path", a.Config.OutputFile))

	if a.Config.Quiet {
		cli.DisplayQuietSummary(stats, duration, out)
		return apperrors.ExitSuccess
	}

	cli.DisplaySummary(stats, duration, out)
	cli.DisplaySaved(a.Config.OutputFile, out)

	if a.Config.Verbose {
		memAfter := metrics.NewMemoryCollector().Snapshot()
		d := metrics.Delta(memBefore, memAfter)
		cli.DisplayMemoryStats(d.HeapAlloc, d.TotalAlloc, d.NumGC, d.PauseTotalNs, out)
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}

	return apperrors.ExitSuccess
}
