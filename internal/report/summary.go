package report

import "github.com/agbru/coinflip/internal/streak"

// Stats summarizes a merged histogram for presentation.
type Stats struct {
	// Flips is the total number of coin flips recorded.
	Flips uint64
	// Heads is the total number of heads across all buckets.
	Heads uint64
	// Tails is the total number of tails across all buckets.
	Tails uint64
	// LongestChain is the longest heads streak observed.
	LongestChain int
}

// Summarize derives the run statistics from a histogram.
func Summarize(h streak.Histogram) Stats {
	return Stats{
		Flips:        h.Flips(),
		Heads:        h.Heads(),
		Tails:        h.Tails(),
		LongestChain: h.MaxChain(),
	}
}

// HeadsRatio returns the fraction of flips that were heads, or 0 for an
// empty run.
func (s Stats) HeadsRatio() float64 {
	if s.Flips == 0 {
		return 0
	}
	return float64(s.Heads) / float64(s.Flips)
}
