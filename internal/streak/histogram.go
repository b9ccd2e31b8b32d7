package streak

// Bucket holds the two counters tracked per streak length: how many times a
// streak of exactly that length of consecutive heads was extended by one more
// head, and how many times it was terminated by a tail.
type Bucket struct {
	Heads uint64
	Tails uint64
}

// Histogram maps a streak length (>= 1) to its Bucket. Keys are contiguous
// from 1 up to the maximum streak length observed in the source data, since
// every streak passes through every length on its way up.
//
// A Histogram is created fresh per trial run and treated as immutable once
// returned; Merge allocates a new map and never modifies its inputs.
type Histogram map[int]Bucket

// MaxChain returns the largest streak length present, or 0 for an empty
// histogram.
func (h Histogram) MaxChain() int {
	max := 0
	for k := range h {
		if k > max {
			max = k
		}
	}
	return max
}

// Flips returns the total number of coin flips recorded, i.e. the sum of
// heads and tails over all buckets. Every flip lands in exactly one bucket.
func (h Histogram) Flips() uint64 {
	var total uint64
	for _, b := range h {
		total += b.Heads + b.Tails
	}
	return total
}

// Heads returns the total number of heads recorded across all buckets.
func (h Histogram) Heads() uint64 {
	var total uint64
	for _, b := range h {
		total += b.Heads
	}
	return total
}

// Tails returns the total number of tails recorded across all buckets.
func (h Histogram) Tails() uint64 {
	var total uint64
	for _, b := range h {
		total += b.Tails
	}
	return total
}

// Merge combines any number of histograms into a new one by element-wise
// summation: for every key present in any input, the merged bucket is the sum
// of that key's heads and tails across all inputs, with missing keys treated
// as zero. The operation is commutative and associative, so the merge order of
// worker results never affects the outcome. Inputs are not modified.
func Merge(hists ...Histogram) Histogram {
	merged := make(Histogram)
	for _, h := range hists {
		for k, b := range h {
			m := merged[k]
			m.Heads += b.Heads
			m.Tails += b.Tails
			merged[k] = m
		}
	}
	return merged
}
