package cli

import (
	"io"
	"sync"

	"github.com/agbru/coinflip/internal/orchestration"
	"github.com/agbru/coinflip/internal/progress"
)

// CLIProgressReporter implements orchestration.ProgressReporter for terminal
// output. It wraps DisplayProgress to provide a spinner and progress bar
// while the trial workers run.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the ongoing run.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}
