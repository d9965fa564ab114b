package order_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimizers/hasher"
	"github.com/katalvlaran/minimizers/order"
	"github.com/katalvlaran/minimizers/seqgen"
)

// keysMatchKey asserts Keys(text,k)[i] == Key(text[i:i+k]) for every i.
func keysMatchKey(t *testing.T, o order.Order[uint64], text []byte, k int) {
	t.Helper()
	got := slices.Collect(o.Keys(text, k))
	want := make([]uint64, 0, len(text)-k+1)
	for i := 0; i+k <= len(text); i++ {
		want = append(want, o.Key(text[i:i+k]))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("k=%d: Keys disagrees with Key (-want +got):\n%s", k, diff)
	}
}

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

// TestRandom_KeysMatchKey covers the central Order property for Random with
// several hashers and batching wrappers.
func TestRandom_KeysMatchKey(t *testing.T) {
	text, err := seqgen.Random(400, seqgen.WithSeed(2))
	require.NoError(t, err)

	hs := []hasher.Hasher[uint64]{
		nil,
		hasher.XXHash{},
		hasher.NtHash{},
		hasher.NewEager[uint64](hasher.NtHash{}),
		hasher.NewBuffer[uint64](hasher.FxHash{}),
	}
	for _, h := range hs {
		for _, k := range []int{1, 5, 11, 31} {
			o := order.Random{Hasher: h, Seed: 17}.ToOrder(10, k, 4)
			keysMatchKey(t, o, text, k)
		}
	}
}

// TestRandom_WrapperInvariant verifies batching wrappers never change keys.
func TestRandom_WrapperInvariant(t *testing.T) {
	text, err := seqgen.Random(200, seqgen.WithSeed(4))
	require.NoError(t, err)

	plain := slices.Collect(order.Random{}.ToOrder(1, 9, 4).Keys(text, 9))
	eager := slices.Collect(order.Random{Hasher: hasher.NewEager[uint64](hasher.FxHash{})}.ToOrder(1, 9, 4).Keys(text, 9))
	assert.Equal(t, plain, eager)
}

// TestRandom_Seed verifies the seed changes the order.
func TestRandom_Seed(t *testing.T) {
	kmer := []byte("ACGTACGT")
	a := order.Random{Seed: 1}.ToOrder(1, 8, 4).Key(kmer)
	b := order.Random{Seed: 2}.ToOrder(1, 8, 4).Key(kmer)
	assert.NotEqual(t, a, b)
}

// TestLex_KnownKeys pins base-sigma values.
func TestLex_KnownKeys(t *testing.T) {
	o := order.Lex{}.ToOrder(1, 4, 4)
	assert.Equal(t, uint64(0), o.Key([]byte{0, 0, 0, 0}))
	assert.Equal(t, uint64(27), o.Key([]byte{0, 1, 2, 3}))
	assert.Equal(t, uint64(255), o.Key([]byte{3, 3, 3, 3}))

	// lexicographic: smaller prefix wins regardless of suffix
	assert.Less(t, o.Key([]byte{0, 3, 3, 3}), o.Key([]byte{1, 0, 0, 0}))
}

// TestLex_KeysMatchKey verifies the rolling key, including k=32 with
// sigma=4 where sigma^k is exactly 2^64.
func TestLex_KeysMatchKey(t *testing.T) {
	seq, err := seqgen.Random(300, seqgen.WithSeed(8))
	require.NoError(t, err)
	ranks, err := seqgen.Encode(seq)
	require.NoError(t, err)

	for _, k := range []int{1, 2, 7, 31, 32} {
		keysMatchKey(t, order.Lex{}.ToOrder(1, k, 4), ranks, k)
	}
	all3 := slices.Repeat([]byte{3}, 40)
	keysMatchKey(t, order.Lex{}.ToOrder(1, 32, 4), all3, 32)
	assert.Equal(t, ^uint64(0), order.Lex{}.ToOrder(1, 32, 4).Key(all3[:32]))
}

// TestLex_Preconditions covers overflow and alphabet violations.
func TestLex_Preconditions(t *testing.T) {
	assert.ErrorIs(t, recoverErr(func() { order.Lex{}.ToOrder(1, 33, 4) }), order.ErrKeyOverflow)
	assert.ErrorIs(t, recoverErr(func() { order.Lex{}.ToOrder(1, 3, 0) }), order.ErrSymbol)

	o := order.Lex{}.ToOrder(1, 3, 4)
	assert.ErrorIs(t, recoverErr(func() { o.Key([]byte{0, 4, 0}) }), order.ErrSymbol)
	assert.ErrorIs(t, recoverErr(func() { o.Keys([]byte{0, 1, 2, 'A'}, 3) }), order.ErrSymbol)
}

// TestOrder_LengthPreconditions verifies wrong lengths fail fast.
func TestOrder_LengthPreconditions(t *testing.T) {
	for name, o := range map[string]order.Order[uint64]{
		"random": order.Random{}.ToOrder(1, 4, 4),
		"lex":    order.Lex{}.ToOrder(1, 4, 4),
	} {
		assert.ErrorIs(t, recoverErr(func() { o.Key([]byte{0, 1, 2}) }), order.ErrKmerLength, name)
		assert.ErrorIs(t, recoverErr(func() { o.Keys([]byte{0, 1, 2, 3, 0}, 3) }), order.ErrKmerLength, name)
		assert.ErrorIs(t, recoverErr(func() { o.Keys([]byte{0, 1, 2}, 4) }), order.ErrWindow, name)
	}
}

// TestRandom_SplitHasherDropsWindow verifies a hasher that loses the odd
// final window is reported instead of silently shortening Keys.
func TestRandom_SplitHasherDropsWindow(t *testing.T) {
	text := []byte("ACGTTGCATGCA") // 9 windows of 4
	for _, h := range []hasher.Hasher[uint64]{
		hasher.NewSplit[uint64](hasher.FxHash{}),
		hasher.NewParallelSplit[uint64](hasher.FxHash{}),
	} {
		o := order.Random{Hasher: h}.ToOrder(1, 4, 4)
		err := recoverErr(func() { slices.Collect(o.Keys(text, 4)) })
		assert.ErrorIs(t, err, order.ErrDigestCount)

		// an even window count splits cleanly
		keysMatchKey(t, o, text[:11], 4)
	}
}

// constOrder gives every k-mer the same key; Keys uses the default helper.
type constOrder struct{ k int }

func (c constOrder) Key(kmer []byte) int {
	order.CheckKmer(len(kmer), c.k)
	return 7
}

func (c constOrder) Keys(text []byte, k int) iter.Seq[int] {
	order.CheckText(len(text), k, c.k)
	return order.Windows[int](c, text, k)
}

// TestWindows_DefaultKeys verifies the default Keys helper and early stop.
func TestWindows_DefaultKeys(t *testing.T) {
	o := constOrder{k: 2}
	assert.Equal(t, []int{7, 7, 7}, slices.Collect(o.Keys([]byte("abcd"), 2)))

	n := 0
	for range o.Keys([]byte("abcdef"), 2) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
