// Package progress defines the progress update types exchanged between the
// trial workers and the presentation layers (CLI spinner, TUI dashboard).
// It sits below both so that neither depends on the other.
package progress

// Update reports the completion fraction of a single worker's batch.
type Update struct {
	// WorkerIndex identifies the reporting worker (0-based).
	WorkerIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}

// Callback receives a completion fraction from inside a trial run.
type Callback func(value float64)
