package hasher

import (
	"encoding/binary"
	"iter"
	"math/bits"
)

// fxSeed is the FxHash 64-bit multiplier.
const fxSeed uint64 = 0x51_7c_c1_b7_27_22_0a_95

// FxHash is the word-at-a-time multiplicative hash used by rustc.
// Fast and well-distributed on short keys; not seeded.
type FxHash struct{}

// Hash consumes t in 8, 4, 2 and 1 byte little-endian words.
func (FxHash) Hash(t []byte) uint64 {
	var h uint64
	for len(t) >= 8 {
		h = fxAdd(h, binary.LittleEndian.Uint64(t))
		t = t[8:]
	}
	if len(t) >= 4 {
		h = fxAdd(h, uint64(binary.LittleEndian.Uint32(t)))
		t = t[4:]
	}
	if len(t) >= 2 {
		h = fxAdd(h, uint64(binary.LittleEndian.Uint16(t)))
		t = t[2:]
	}
	if len(t) >= 1 {
		h = fxAdd(h, uint64(t[0]))
	}
	return h
}

func (h FxHash) HashKmers(k int, t []byte) iter.Seq[uint64] {
	return Windows[uint64](h, k, t)
}

func fxAdd(h, word uint64) uint64 {
	return (bits.RotateLeft64(h, 5) ^ word) * fxSeed
}
