package streak

import (
	"context"
	"math/rand/v2"

	"github.com/agbru/coinflip/internal/progress"
)

// Source yields uniform draws over [0,1). *rand.Rand satisfies it; tests
// substitute scripted sources to drive the streak state machine
// deterministically.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source for one worker. The same (seed,
// worker) pair always produces the same flip sequence, which makes seeded
// runs reproducible while keeping worker streams independent.
func NewSource(seed int64, worker int) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(worker)+1))
}

// checkStride is how many flips a run performs between context checks and
// progress reports. Large enough that the per-flip cost is unaffected.
const checkStride = 1 << 16

// Run flips a fair coin numTrials times and returns the streak histogram.
//
// The counter starts at 1 and tracks the length of the current run of
// consecutive heads. Each flip is recorded in the bucket for the current
// counter value: a head (draw >= 0.5) increments that bucket's heads count and
// extends the streak, a tail increments the tails count and resets the
// counter. A streak still in progress when the trials end contributes only to
// the heads side of its bucket; it is never closed out with a synthetic tail.
//
// The returned histogram's keys are contiguous from 1 to the longest streak
// observed. numTrials of 0 returns an empty histogram.
func Run(numTrials int, src Source) Histogram {
	h := make(Histogram)
	counter := 1
	for range numTrials {
		b := h[counter]
		if src.Float64() >= 0.5 {
			b.Heads++
			h[counter] = b
			counter++
		} else {
			b.Tails++
			h[counter] = b
			counter = 1
		}
	}
	return h
}

// RunContext is Run with cooperative cancellation and progress reporting for
// long batches. The context is checked and the callback invoked every
// checkStride flips; the callback receives the completion fraction. On
// cancellation the partial histogram is discarded and the context error
// returned.
func RunContext(ctx context.Context, numTrials int, src Source, report progress.Callback) (Histogram, error) {
	h := make(Histogram)
	counter := 1
	done := 0
	for done < numTrials {
		n := min(numTrials-done, checkStride)
		for range n {
			b := h[counter]
			if src.Float64() >= 0.5 {
				b.Heads++
				h[counter] = b
				counter++
			} else {
				b.Tails++
				h[counter] = b
				counter = 1
			}
		}
		done += n

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if report != nil {
			report(float64(done) / float64(numTrials))
		}
	}
	if report != nil && numTrials == 0 {
		report(1.0)
	}
	return h, nil
}
