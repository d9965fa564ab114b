package order

import (
	"iter"

	"github.com/katalvlaran/minimizers/hasher"
)

// Random orders k-mers by a mixed digest, giving a pseudo-random total order.
//
// The zero value digests with hasher.FxHash and seed 0. Wrapping Hasher in a
// batching wrapper (hasher.Eager, hasher.Buffer, ...) changes how Keys are
// materialized, never their values. Split wrappers drop the final window when
// the window count is odd; Keys panics with ErrDigestCount when Hasher yields
// a different number of digests than there are windows.
type Random struct {
	Hasher hasher.Hasher[uint64]
	Seed   uint64
}

// ToOrder ignores w and sigma.
func (r Random) ToOrder(_, k, _ int) Order[uint64] {
	h := r.Hasher
	if h == nil {
		h = hasher.FxHash{}
	}
	return RandomOrder{h: h, seed: r.Seed, k: k}
}

// RandomOrder is the Order built by Random.
type RandomOrder struct {
	h    hasher.Hasher[uint64]
	seed uint64
	k    int
}

func (o RandomOrder) Key(kmer []byte) uint64 {
	CheckKmer(len(kmer), o.k)
	return mix(o.h.Hash(kmer) ^ o.seed)
}

func (o RandomOrder) Keys(text []byte, k int) iter.Seq[uint64] {
	CheckText(len(text), k, o.k)
	want := len(text) - k + 1
	digests := o.h.HashKmers(k, text)
	return func(yield func(uint64) bool) {
		n := 0
		for d := range digests {
			if n == want {
				panic(Violation(ErrDigestCount, "more than %d digests", want))
			}
			n++
			if !yield(mix(d ^ o.seed)) {
				return
			}
		}
		if n != want {
			panic(Violation(ErrDigestCount, "got %d digests, want %d", n, want))
		}
	}
}

// mix is the SplitMix64 finalizer: a bijection on uint64 with full avalanche,
// so distinct digests stay distinct and nearby digests spread out.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
