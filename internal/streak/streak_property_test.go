package streak

import (
	"maps"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genHistogram builds a histogram by running the streak state machine over a
// generated flip sequence, so every generated value satisfies the contiguity
// invariant real histograms have.
func genHistogram() gopter.Gen {
	return gen.SliceOf(gen.Bool()).Map(func(flips []bool) Histogram {
		draws := make([]float64, len(flips))
		for i, head := range flips {
			if head {
				draws[i] = 0.75
			} else {
				draws[i] = 0.25
			}
		}
		return Run(len(draws), &scriptedSource{draws: draws})
	})
}

// TestBatchSplitter_PropertyBased verifies the splitter contract for all
// inputs: the yielded sizes sum exactly to the trial count, there are exactly
// workerCount of them, they never increase, and any two differ by at most 1.
func TestBatchSplitter_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("sizes sum to total and are balanced", prop.ForAll(
		func(total, workers int) bool {
			sizes := BatchSizes(total, workers)
			if len(sizes) != workers {
				return false
			}
			sum := 0
			for i, s := range sizes {
				sum += s
				if s < 0 {
					return false
				}
				if i > 0 && sizes[i-1] < s {
					return false
				}
			}
			if sum != total {
				return false
			}
			return sizes[0]-sizes[len(sizes)-1] <= 1
		},
		gen.IntRange(0, 1_000_000),
		gen.IntRange(1, 128),
	))

	properties.TestingRun(t)
}

// TestMerge_PropertyBased verifies the algebraic laws the parallel collector
// relies on: merging is commutative and associative, and the empty histogram
// is its identity element.
func TestMerge_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("merge is commutative", prop.ForAll(
		func(a, b Histogram) bool {
			return maps.Equal(Merge(a, b), Merge(b, a))
		},
		genHistogram(), genHistogram(),
	))

	properties.Property("merge is associative", prop.ForAll(
		func(a, b, c Histogram) bool {
			left := Merge(Merge(a, b), c)
			right := Merge(a, Merge(b, c))
			return maps.Equal(left, right) && maps.Equal(left, Merge(a, b, c))
		},
		genHistogram(), genHistogram(), genHistogram(),
	))

	properties.Property("empty histogram is the merge identity", prop.ForAll(
		func(a Histogram) bool {
			return maps.Equal(Merge(a, Histogram{}), a)
		},
		genHistogram(),
	))

	properties.Property("merged totals are the sum of input totals", prop.ForAll(
		func(a, b Histogram) bool {
			m := Merge(a, b)
			return m.Flips() == a.Flips()+b.Flips() &&
				m.Heads() == a.Heads()+b.Heads() &&
				m.Tails() == a.Tails()+b.Tails()
		},
		genHistogram(), genHistogram(),
	))

	properties.TestingRun(t)
}

// TestRunner_PropertyBased verifies the runner invariants: every flip lands
// in exactly one bucket and keys are contiguous from 1.
func TestRunner_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("flip count equals trial count", prop.ForAll(
		func(n int, seed int64) bool {
			if seed == 0 {
				seed = 1
			}
			return Run(n, NewSource(seed, 0)).Flips() == uint64(n)
		},
		gen.IntRange(0, 50_000),
		gen.Int64(),
	))

	properties.Property("keys are contiguous from 1", prop.ForAll(
		func(n int, seed int64) bool {
			if seed == 0 {
				seed = 1
			}
			h := Run(n, NewSource(seed, 0))
			for k := 1; k <= h.MaxChain(); k++ {
				if _, ok := h[k]; !ok {
					return false
				}
			}
			return len(h) == h.MaxChain()
		},
		gen.IntRange(0, 50_000),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
