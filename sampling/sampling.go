// Package sampling selects minimizer positions from any order.Order: for
// every run of w consecutive k-mers of a text it picks the leftmost k-mer
// with the smallest key.
//
// Usage
//
//	o := schemes.DefaultOpenClosed(4).ToOrder(w, k, 4)
//	pos := sampling.Positions(o, schemes.Key.Compare, seq, w, k)
//	kept := sampling.Distinct(pos)
//	d := sampling.Density(o, schemes.Key.Compare, seq, w, k)
//
// Preconditions (panic with order.ErrWindow / order.ErrKmerLength):
// w ≥ 1, k ≥ 1, len(text) ≥ w+k-1.
package sampling

import (
	"slices"

	"github.com/katalvlaran/minimizers/internal/slidingmin"
	"github.com/katalvlaran/minimizers/order"
)

// Positions returns, for each window of w consecutive k-mers, the start
// position in text of its leftmost minimal k-mer under cmp: len(text)-k-w+2
// positions, non-decreasing.
func Positions[K any](o order.Order[K], cmp func(a, b K) int, text []byte, w, k int) []int {
	if w < 1 || k < 1 {
		panic(order.Violation(order.ErrKmerLength, "w=%d, k=%d", w, k))
	}
	if len(text) < w+k-1 {
		panic(order.Violation(order.ErrWindow, "len=%d, w=%d, k=%d", len(text), w, k))
	}
	keys := slices.Collect(o.Keys(text, k))
	return slidingmin.ArgMin(keys, w, cmp)
}

// Distinct drops consecutive repeats, leaving the set of sampled positions
// in increasing order.
func Distinct(positions []int) []int {
	return slices.Compact(slices.Clone(positions))
}

// Density is the fraction of k-mers of text that are sampled.
func Density[K any](o order.Order[K], cmp func(a, b K) int, text []byte, w, k int) float64 {
	kept := Distinct(Positions(o, cmp, text, w, k))
	return float64(len(kept)) / float64(len(text)-k+1)
}
