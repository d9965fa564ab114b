package hasher

import (
	"iter"

	"github.com/dolthub/maphash"
)

// MapHash digests windows with the runtime's AES-based map hash under a seed
// drawn when the hasher is created. Two MapHash values disagree with each
// other; one value is deterministic for its whole lifetime.
type MapHash struct {
	h maphash.Hasher[string]
}

// NewMapHash returns a MapHash with a fresh random seed.
func NewMapHash() MapHash {
	return MapHash{h: maphash.NewHasher[string]()}
}

func (m MapHash) Hash(t []byte) uint64 {
	return m.h.Hash(string(t))
}

func (m MapHash) HashKmers(k int, t []byte) iter.Seq[uint64] {
	return Windows[uint64](m, k, t)
}
