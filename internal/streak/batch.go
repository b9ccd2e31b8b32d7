package streak

import "iter"

// Batches yields workerCount batch sizes whose sum is exactly totalTrials.
// The first totalTrials%workerCount values are one larger than the rest, so
// sizes are non-increasing and any two differ by at most 1. When totalTrials
// is smaller than workerCount, exactly totalTrials workers receive a batch of
// size 1 and the remainder receive 0; zero-size batches are valid and produce
// an empty histogram.
//
// workerCount must be positive; callers validate it before planning.
func Batches(totalTrials, workerCount int) iter.Seq[int] {
	return func(yield func(int) bool) {
		base := totalTrials / workerCount
		remainder := totalTrials - base*workerCount
		for i := 0; i < workerCount; i++ {
			size := base
			if i < remainder {
				size++
			}
			if !yield(size) {
				return
			}
		}
	}
}

// BatchSizes materializes Batches into a slice, the form the orchestrator
// dispatches from.
func BatchSizes(totalTrials, workerCount int) []int {
	sizes := make([]int, 0, workerCount)
	for size := range Batches(totalTrials, workerCount) {
		sizes = append(sizes, size)
	}
	return sizes
}
