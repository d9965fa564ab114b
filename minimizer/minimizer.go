// Package minimizer implements the sliding-window minimizer sampler: for a
// window of w consecutive t-mers it reports the offset of the minimal t-mer
// under an inner order.
//
// Windows are byte windows of length w+r-1 holding the w candidate t-mers of
// length r at offsets 0..w-1. Ties resolve to the smallest offset.
//
// Stream processes a whole text in O(n) total: the t-mer keys are computed
// once through the inner order's Keys, then a monotone deque yields the
// arg-min of every window with amortized O(1) work.
package minimizer

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/minimizers/internal/slidingmin"
	"github.com/katalvlaran/minimizers/order"
)

// Minimizer samples the leftmost minimal t-mer of each window.
// It is immutable after construction.
type Minimizer[K constraints.Ordered] struct {
	o order.Order[K]
	w int
	r int
}

// BuildFromOrder builds the inner order with o.ToOrder(w, r, sigma) and wraps
// it. w is the number of candidate t-mers per window and r the t-mer length.
// It panics with order.ErrKmerLength if w < 1 or r < 1.
func BuildFromOrder[K constraints.Ordered](o order.ToOrder[K], w, r, sigma int) *Minimizer[K] {
	if w < 1 || r < 1 {
		panic(order.Violation(order.ErrKmerLength, "w=%d, r=%d", w, r))
	}
	return &Minimizer[K]{o: o.ToOrder(w, r, sigma), w: w, r: r}
}

// Ord returns the inner t-mer order.
func (m *Minimizer[K]) Ord() order.Order[K] { return m.o }

// W returns the number of candidate offsets per window.
func (m *Minimizer[K]) W() int { return m.w }

// R returns the t-mer length.
func (m *Minimizer[K]) R() int { return m.r }

// K returns the window length in bytes, w+r-1.
func (m *Minimizer[K]) K() int { return m.w + m.r - 1 }

// Sample returns the offset in [0, w) of the leftmost minimal t-mer of kmer.
// It panics with order.ErrKmerLength unless len(kmer) == K().
func (m *Minimizer[K]) Sample(kmer []byte) int {
	order.CheckKmer(len(kmer), m.K())
	best := 0
	bestKey := m.o.Key(kmer[:m.r])
	for x := 1; x < m.w; x++ {
		key := m.o.Key(kmer[x : x+m.r])
		if key < bestKey {
			best, bestKey = x, key
		}
	}
	return best
}

// Stream returns Sample for every window of text, left to right:
// len(text)-K()+1 offsets. It panics with order.ErrWindow if text is
// shorter than K().
func (m *Minimizer[K]) Stream(text []byte) []int {
	if len(text) < m.K() {
		panic(order.Violation(order.ErrWindow, "len=%d, k=%d", len(text), m.K()))
	}
	keys := slices.Collect(m.o.Keys(text, m.r))
	pos := slidingmin.ArgMin(keys, m.w, cmp.Compare[K])
	for i := range pos {
		pos[i] -= i
	}
	return pos
}
