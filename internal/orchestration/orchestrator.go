package orchestration

import (
	"context"
	"io"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/coinflip/internal/errors"
	"github.com/agbru/coinflip/internal/progress"
	"github.com/agbru/coinflip/internal/streak"
)

// TrialResult encapsulates the outcome of one worker's batch. It is the unit
// delivered over the results channel: a complete, immutable histogram plus
// bookkeeping for presentation.
type TrialResult struct {
	// Worker is the index of the worker that ran the batch.
	Worker int
	// Hist is the batch's streak histogram. It is nil if an error occurred.
	Hist streak.Histogram
	// Trials is the number of flips the batch was assigned.
	Trials int
	// Duration is the time taken to complete the batch.
	Duration time.Duration
	// Err contains any error that occurred during the batch.
	Err error
}

// Options configures a simulation run.
type Options struct {
	// Seed drives per-worker random sources; 0 selects random seeding.
	Seed int64
	// Observer receives flip-count progress, e.g. for Prometheus export.
	// Nil means no observation.
	Observer FlipObserver
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking worker
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteTrials runs one trial batch per entry of plan, concurrently, and
// collects the results.
//
// Each worker is an isolated goroutine with its own random source; workers
// never observe each other's state. Completed histograms are delivered over a
// single channel and the collector receives exactly len(plan) results before
// returning, which is the run's only synchronization point. The returned
// slice is ordered by worker index regardless of completion order.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - plan: The batch sizes to dispatch, one worker per entry.
//   - opts: Seeding and observation options.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress display.
//
// Returns:
//   - []TrialResult: One result per planned batch.
func ExecuteTrials(ctx context.Context, plan []int, opts Options, reporter ProgressReporter, out io.Writer) []TrialResult {
	g, ctx := errgroup.WithContext(ctx)
	progressChan := make(chan progress.Update, len(plan)*ProgressBufferMultiplier)
	resultChan := make(chan TrialResult, len(plan))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(plan), out)

	observer := opts.Observer
	if observer == nil {
		observer = NullObserver{}
	}

	for i, batch := range plan {
		worker, numTrials := i, batch
		g.Go(func() error {
			src := streak.NewSource(opts.Seed, worker)
			observed := uint64(0)
			report := func(v float64) {
				progressChan <- progress.Update{WorkerIndex: worker, Value: v}
				done := uint64(math.Round(v * float64(numTrials)))
				if done > observed {
					observer.ObserveFlips(done - observed)
					observed = done
				}
			}

			startTime := time.Now()
			hist, err := streak.RunContext(ctx, numTrials, src, report)
			resultChan <- TrialResult{
				Worker:   worker,
				Hist:     hist,
				Trials:   numTrials,
				Duration: time.Since(startTime),
				Err:      err,
			}
			return nil
		})
	}

	// The collector: block until exactly one result per batch has arrived.
	results := make([]TrialResult, len(plan))
	for range plan {
		r := <-resultChan
		results[r.Worker] = r
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// MergeResults folds worker results into a single histogram. If any worker
// failed, the first failure is returned wrapped with its worker index and no
// histogram is produced; there are no partial results.
func MergeResults(results []TrialResult) (streak.Histogram, error) {
	hists := make([]streak.Histogram, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			if apperrors.IsContextError(r.Err) {
				return nil, r.Err
			}
			return nil, apperrors.SimulationError{Worker: r.Worker, Cause: r.Err}
		}
		hists = append(hists, r.Hist)
	}
	return streak.Merge(hists...), nil
}

// TotalTrials sums the planned batch sizes of the given results.
func TotalTrials(results []TrialResult) int {
	total := 0
	for _, r := range results {
		total += r.Trials
	}
	return total
}
