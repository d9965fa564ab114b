package order

import (
	"iter"
	"math/bits"
)

// Lex orders k-mers lexicographically by symbol rank. Each byte of the text
// is a rank in [0, sigma); the key of a k-mer is its value as a base-sigma
// number, most significant symbol first.
//
// ToOrder panics with ErrKeyOverflow when sigma^k exceeds 2^64 and with
// ErrSymbol when sigma < 1.
type Lex struct{}

// ToOrder ignores w.
func (Lex) ToOrder(_, k, sigma int) Order[uint64] {
	if sigma < 1 {
		panic(Violation(ErrSymbol, "sigma=%d", sigma))
	}
	if k < 1 {
		panic(Violation(ErrKmerLength, "k=%d", k))
	}
	base := uint64(sigma)
	top := uint64(1) // sigma^(k-1)
	for i := 1; i < k; i++ {
		hi, lo := bits.Mul64(top, base)
		if hi != 0 {
			panic(Violation(ErrKeyOverflow, "sigma=%d, k=%d", sigma, k))
		}
		top = lo
	}
	// keys range over [0, sigma^k); sigma^k itself may be exactly 2^64
	if hi, lo := bits.Mul64(top, base); hi > 1 || (hi == 1 && lo != 0) {
		panic(Violation(ErrKeyOverflow, "sigma=%d, k=%d", sigma, k))
	}
	return LexOrder{k: k, sigma: base, top: top}
}

// LexOrder is the Order built by Lex.
type LexOrder struct {
	k     int
	sigma uint64
	top   uint64
}

func (o LexOrder) Key(kmer []byte) uint64 {
	CheckKmer(len(kmer), o.k)
	var key uint64
	for _, b := range kmer {
		key = key*o.sigma + o.rank(b)
	}
	return key
}

// Keys rolls the key: drop the leading symbol, shift, append the new one.
func (o LexOrder) Keys(text []byte, k int) iter.Seq[uint64] {
	CheckText(len(text), k, o.k)
	for _, b := range text {
		o.rank(b)
	}
	return func(yield func(uint64) bool) {
		key := o.Key(text[:k])
		if !yield(key) {
			return
		}
		for i := k; i < len(text); i++ {
			key = (key-o.rank(text[i-k])*o.top)*o.sigma + o.rank(text[i])
			if !yield(key) {
				return
			}
		}
	}
}

func (o LexOrder) rank(b byte) uint64 {
	r := uint64(b)
	if r >= o.sigma {
		panic(Violation(ErrSymbol, "rank %d, sigma=%d", b, o.sigma))
	}
	return r
}
