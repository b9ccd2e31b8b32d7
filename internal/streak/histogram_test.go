package streak

import (
	"maps"
	"testing"
)

func TestHistogramAccessors(t *testing.T) {
	t.Parallel()
	h := Histogram{
		1: {Heads: 4, Tails: 3},
		2: {Heads: 2, Tails: 1},
		3: {Heads: 0, Tails: 2},
	}

	if got := h.MaxChain(); got != 3 {
		t.Errorf("MaxChain() = %d, want 3", got)
	}
	if got := h.Flips(); got != 12 {
		t.Errorf("Flips() = %d, want 12", got)
	}
	if got := h.Heads(); got != 6 {
		t.Errorf("Heads() = %d, want 6", got)
	}
	if got := h.Tails(); got != 6 {
		t.Errorf("Tails() = %d, want 6", got)
	}
}

func TestHistogramEmpty(t *testing.T) {
	t.Parallel()
	h := make(Histogram)
	if h.MaxChain() != 0 {
		t.Error("empty histogram MaxChain should be 0")
	}
	if h.Flips() != 0 {
		t.Error("empty histogram Flips should be 0")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		inputs []Histogram
		want   Histogram
	}{
		{
			name:   "no inputs yields empty",
			inputs: nil,
			want:   Histogram{},
		},
		{
			name:   "single input is copied",
			inputs: []Histogram{{1: {Heads: 2, Tails: 1}}},
			want:   Histogram{1: {Heads: 2, Tails: 1}},
		},
		{
			name: "overlapping keys are summed",
			inputs: []Histogram{
				{1: {Heads: 1, Tails: 2}, 2: {Heads: 1}},
				{1: {Heads: 3, Tails: 1}},
			},
			want: Histogram{1: {Heads: 4, Tails: 3}, 2: {Heads: 1}},
		},
		{
			name: "missing keys are treated as zero",
			inputs: []Histogram{
				{1: {Tails: 1}},
				{1: {Heads: 1, Tails: 1}, 2: {Heads: 1, Tails: 1}, 3: {Tails: 1}},
			},
			want: Histogram{1: {Heads: 1, Tails: 2}, 2: {Heads: 1, Tails: 1}, 3: {Tails: 1}},
		},
		{
			name: "merge with empty is identity",
			inputs: []Histogram{
				{1: {Heads: 5, Tails: 5}, 2: {Heads: 2, Tails: 3}},
				{},
			},
			want: Histogram{1: {Heads: 5, Tails: 5}, 2: {Heads: 2, Tails: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Merge(tt.inputs...)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	a := Histogram{1: {Heads: 1, Tails: 1}}
	b := Histogram{1: {Heads: 2, Tails: 2}}
	aBefore := maps.Clone(a)
	bBefore := maps.Clone(b)

	merged := Merge(a, b)

	if !maps.Equal(a, aBefore) || !maps.Equal(b, bBefore) {
		t.Error("Merge must not modify its inputs")
	}

	// The merged map must be a fresh object: writing to it must not leak back.
	merged[1] = Bucket{Heads: 99}
	if a[1].Heads == 99 || b[1].Heads == 99 {
		t.Error("merged histogram shares storage with an input")
	}
}
