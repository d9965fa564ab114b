package hasher

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Unbuffered passes the inner hasher's lazy digest stream through untouched.
type Unbuffered[Out constraints.Ordered] struct {
	Inner Hasher[Out]
}

func NewUnbuffered[Out constraints.Ordered](h Hasher[Out]) Unbuffered[Out] {
	return Unbuffered[Out]{Inner: h}
}

func (u Unbuffered[Out]) Hash(t []byte) Out { return u.Inner.Hash(t) }

func (u Unbuffered[Out]) HashKmers(k int, t []byte) iter.Seq[Out] {
	return u.Inner.HashKmers(k, t)
}

// Buffer drains the inner stream into a slice, then replays it.
type Buffer[Out constraints.Ordered] struct {
	Inner Hasher[Out]
}

func NewBuffer[Out constraints.Ordered](h Hasher[Out]) Buffer[Out] {
	return Buffer[Out]{Inner: h}
}

func (b Buffer[Out]) Hash(t []byte) Out { return b.Inner.Hash(t) }

func (b Buffer[Out]) HashKmers(k int, t []byte) iter.Seq[Out] {
	v := make([]Out, 0, KmerCount(k, len(t)))
	v = slices.AppendSeq(v, b.Inner.HashKmers(k, t))
	return slices.Values(v)
}

// Eager allocates exactly one slot per window and fills every slot by index
// before the first digest is handed out.
type Eager[Out constraints.Ordered] struct {
	Inner Hasher[Out]
}

func NewEager[Out constraints.Ordered](h Hasher[Out]) Eager[Out] {
	return Eager[Out]{Inner: h}
}

func (e Eager[Out]) Hash(t []byte) Out { return e.Inner.Hash(t) }

func (e Eager[Out]) HashKmers(k int, t []byte) iter.Seq[Out] {
	v := make([]Out, KmerCount(k, len(t)))
	fill(v, e.Inner.HashKmers(k, t))
	return slices.Values(v)
}

// Split computes the windows as two independent halves, each from its own
// sub-text, and concatenates the results.
//
// With num = len(t)-k+1 windows and per = num/2, half 0 covers windows
// [0, per) and half 1 covers [per, 2*per). When num is odd the final window
// is dropped.
//
// FIXME: confirm whether the odd final window should be kept.
type Split[Out constraints.Ordered] struct {
	Inner Hasher[Out]
}

func NewSplit[Out constraints.Ordered](h Hasher[Out]) Split[Out] {
	return Split[Out]{Inner: h}
}

func (s Split[Out]) Hash(t []byte) Out { return s.Inner.Hash(t) }

func (s Split[Out]) HashKmers(k int, t []byte) iter.Seq[Out] {
	p := partition(k, t)
	v := make([]Out, 2*p.per)
	if p.per > 0 {
		fill(v[:p.per], s.Inner.HashKmers(k, p.t0))
		fill(v[p.per:], s.Inner.HashKmers(k, p.t1))
	}
	return slices.Values(v)
}

// ParallelSplit has the output of Split but computes the two halves on
// separate goroutines. The halves write disjoint ranges of one buffer and are
// joined before the buffer is read.
type ParallelSplit[Out constraints.Ordered] struct {
	Inner Hasher[Out]
}

func NewParallelSplit[Out constraints.Ordered](h Hasher[Out]) ParallelSplit[Out] {
	return ParallelSplit[Out]{Inner: h}
}

func (s ParallelSplit[Out]) Hash(t []byte) Out { return s.Inner.Hash(t) }

func (s ParallelSplit[Out]) HashKmers(k int, t []byte) iter.Seq[Out] {
	p := partition(k, t)
	v := make([]Out, 2*p.per)
	if p.per > 0 {
		// A panic inside a goroutine cannot be recovered by the caller, so
		// each half reports its precondition failure through the group.
		var g errgroup.Group
		for i, sub := range [2][]byte{p.t0, p.t1} {
			dst := v[i*p.per : (i+1)*p.per]
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						if e, ok := r.(error); ok {
							err = e
							return
						}
						panic(r)
					}
				}()
				fill(dst, s.Inner.HashKmers(k, sub))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			panic(err)
		}
	}
	return slices.Values(v)
}

// halves describes the two overlapping sub-texts used by the split wrappers.
type halves struct {
	per    int
	t0, t1 []byte
}

func partition(k int, t []byte) halves {
	num := KmerCount(k, len(t))
	per := num / 2
	if per == 0 {
		return halves{}
	}
	partLen := per + k - 1
	return halves{
		per: per,
		t0:  t[:partLen],
		t1:  t[per : per+partLen],
	}
}

// fill writes seq into dst by index and panics with ErrBufferSize if seq is
// shorter or longer than dst.
func fill[Out constraints.Ordered](dst []Out, seq iter.Seq[Out]) {
	i := 0
	for d := range seq {
		if i == len(dst) {
			panic(violation(ErrBufferSize, "more than %d digests", len(dst)))
		}
		dst[i] = d
		i++
	}
	if i != len(dst) {
		panic(violation(ErrBufferSize, "got %d digests, want %d", i, len(dst)))
	}
}
