package order

import "iter"

// Order is a total preorder over k-mers of one fixed length.
type Order[K any] interface {
	// Key returns the comparison key of kmer; smaller keys are preferred.
	Key(kmer []byte) K
	// Keys streams Key for every window of length k of text, left to right.
	Keys(text []byte, k int) iter.Seq[K]
}

// ToOrder builds an Order for windows of w k-mers of length k over an
// alphabet of sigma symbols. Implementations are pure factories.
type ToOrder[K any] interface {
	ToOrder(w, k, sigma int) Order[K]
}

// Windows is the default Keys: o.Key applied to every window of text.
// The caller checks preconditions.
func Windows[K any](o Order[K], text []byte, k int) iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i+k <= len(text); i++ {
			if !yield(o.Key(text[i : i+k])) {
				return
			}
		}
	}
}
