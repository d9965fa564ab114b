package hasher

import (
	"iter"

	"github.com/will-rowe/ntHash"
)

// NtMaxK is the longest window the ntHash rolling iterator accepts.
const NtMaxK = int(ntHash.MAXIMUM_K_SIZE)

// NtHash is the forward-strand ntHash rolling hash for nucleotide text.
//
// HashKmers streams the library's rolling iterator, which updates the digest
// in O(1) per base; the rolled value of every window equals the value Hash
// computes for that window from scratch.
//
// Windows are limited to 1..NtMaxK bytes: Hash panics with ErrWindow for
// longer or empty input, and HashKmers panics with ErrWindow for k > NtMaxK
// when it is called.
type NtHash struct{}

// Hash runs the iterator over a single window.
func (NtHash) Hash(t []byte) uint64 {
	checkNtWindow(len(t), len(t))
	var out uint64
	for d := range ntStream(len(t), t) {
		out = d
	}
	return out
}

func (NtHash) HashKmers(k int, t []byte) iter.Seq[uint64] {
	checkNtWindow(k, len(t))
	return func(yield func(uint64) bool) {
		ch := ntStream(k, t)
		// the producer goroutine only exits once the channel is drained,
		// including when yield panics
		defer func() {
			for range ch {
			}
		}()
		for d := range ch {
			if !yield(d) {
				return
			}
		}
	}
}

func checkNtWindow(k, n int) {
	KmerCount(k, n)
	if k > NtMaxK {
		panic(violation(ErrWindow, "nthash: k=%d exceeds %d", k, NtMaxK))
	}
}

func ntStream(k int, t []byte) <-chan uint64 {
	it, err := ntHash.New(&t, uint(k))
	if err != nil {
		panic(violation(ErrWindow, "nthash: %v", err))
	}
	return it.Hash(false)
}
