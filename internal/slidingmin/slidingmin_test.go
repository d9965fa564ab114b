package slidingmin

import (
	"cmp"
	"math/rand"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// TestArgMin_MatchesRescan cross-checks the deque against a direct scan on
// random keys drawn from a tiny range, so ties are frequent.
func TestArgMin_MatchesRescan(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(80)
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rng.Intn(4)
		}
		for w := 1; w <= n; w++ {
			want := rescan(keys, w, cmp.Compare[int])
			got := monotone(keys, w, cmp.Compare[int])
			if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("keys=%v w=%d (-rescan +deque):\n%s", keys, w, diff)
			}
		}
	}
}

// TestArgMin_LeftmostTie verifies equal keys resolve to the smaller index.
func TestArgMin_LeftmostTie(t *testing.T) {
	keys := []int{3, 1, 1, 2, 1, 5}
	assert.Equal(t, []int{1, 1, 2, 4}, ArgMin(keys, 3, cmp.Compare[int]))
	assert.Equal(t, []int{1, 1}, ArgMin(keys, 5, cmp.Compare[int]))
	assert.Equal(t, []int{1, 1, 2, 4, 4}, ArgMin(keys, 2, cmp.Compare[int]))
}

// TestArgMin_Edges covers short inputs and invalid windows.
func TestArgMin_Edges(t *testing.T) {
	assert.Empty(t, ArgMin([]int{1, 2}, 3, cmp.Compare[int]))
	assert.Equal(t, []int{0, 1, 2}, ArgMin([]int{4, 5, 6}, 1, cmp.Compare[int]))
	assert.Panics(t, func() { ArgMin([]int{1}, 0, cmp.Compare[int]) })
}

// TestRing_Wraps exercises head wrap-around.
func TestRing_Wraps(t *testing.T) {
	r := newRing(2)
	r.pushBack(1)
	r.pushBack(2)
	r.popFront()
	r.pushBack(3)
	assert.Equal(t, 2, r.front())
	assert.Equal(t, 3, r.back())
	assert.Panics(t, func() { r.pushBack(4) })
	r.popBack()
	assert.Equal(t, 2, r.back())
	assert.Equal(t, 1, r.len())
}
