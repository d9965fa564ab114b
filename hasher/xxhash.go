package hasher

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// XXHash digests each window with XXH64 (seed 0).
type XXHash struct{}

func (XXHash) Hash(t []byte) uint64 {
	return xxhash.Sum64(t)
}

func (h XXHash) HashKmers(k int, t []byte) iter.Seq[uint64] {
	return Windows[uint64](h, k, t)
}
