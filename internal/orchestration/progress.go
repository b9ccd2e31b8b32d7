package orchestration

import (
	"github.com/agbru/coinflip/internal/progress"
)

// ProgressAggregator folds per-worker completion fractions into a single
// overall fraction. Both the CLI spinner and the TUI use it to present one
// consolidated figure for the whole run.
type ProgressAggregator struct {
	fractions  []float64
	numWorkers int
}

// NewProgressAggregator creates an aggregator for the given number of
// workers. Returns nil if numWorkers <= 0.
func NewProgressAggregator(numWorkers int) *ProgressAggregator {
	if numWorkers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		fractions:  make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records a worker's progress and returns the new overall average.
// Updates for out-of-range worker indexes are ignored.
func (a *ProgressAggregator) Update(u progress.Update) float64 {
	if u.WorkerIndex >= 0 && u.WorkerIndex < len(a.fractions) {
		a.fractions[u.WorkerIndex] = u.Value
	}
	return a.Average()
}

// Average returns the current overall completion fraction without updating.
func (a *ProgressAggregator) Average() float64 {
	var total float64
	for _, f := range a.fractions {
		total += f
	}
	return total / float64(a.numWorkers)
}

// Worker returns the last recorded fraction for one worker.
func (a *ProgressAggregator) Worker(index int) float64 {
	if index < 0 || index >= len(a.fractions) {
		return 0
	}
	return a.fractions[index]
}

// NumWorkers returns the number of workers being tracked.
func (a *ProgressAggregator) NumWorkers() int {
	return a.numWorkers
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numWorkers <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.Update) {
	for range progressChan {
	}
}
