package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/coinflip/internal/progress"
)

// ProgressReporter defines the interface for displaying trial progress.
// It decouples the orchestration layer from the presentation layer: the
// orchestrator coordinates workers while implementations handle the visual
// representation (spinner, TUI bars, nothing at all).
type ProgressReporter interface {
	// DisplayProgress starts consuming progress updates from the channel.
	// It is called in a separate goroutine and runs until progressChan is
	// closed, then signals wg.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving updates from trial workers.
	//   - numWorkers: The number of workers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Used for quiet mode and testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// FlipObserver receives completed flip counts as workers make progress.
// The Prometheus metrics endpoint implements it; NullObserver is used when
// metrics are disabled.
type FlipObserver interface {
	// ObserveFlips records that n additional flips have completed.
	ObserveFlips(n uint64)
}

// NullObserver is a no-op FlipObserver.
type NullObserver struct{}

// ObserveFlips discards the observation.
func (NullObserver) ObserveFlips(uint64) {}
