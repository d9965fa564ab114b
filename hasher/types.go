package hasher

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Hasher maps a byte slice to a fixed-width digest.
//
// HashKmers must yield, in order, the same values as calling Hash on each
// window t[i:i+k]. Implementations without a faster streaming path can
// return Windows(h, k, t).
type Hasher[Out constraints.Ordered] interface {
	Hash(t []byte) Out
	HashKmers(k int, t []byte) iter.Seq[Out]
}

// KmerCount returns the number of windows of length k in a text of length n.
// It panics with ErrWindow unless 1 ≤ k ≤ n.
func KmerCount(k, n int) int {
	if k < 1 || k > n {
		panic(violation(ErrWindow, "k=%d, len=%d", k, n))
	}
	return n - k + 1
}

// Windows is the default HashKmers: Hash applied to every window of t.
func Windows[Out constraints.Ordered](h Hasher[Out], k int, t []byte) iter.Seq[Out] {
	n := KmerCount(k, len(t))
	return func(yield func(Out) bool) {
		for i := 0; i < n; i++ {
			if !yield(h.Hash(t[i : i+k])) {
				return
			}
		}
	}
}
