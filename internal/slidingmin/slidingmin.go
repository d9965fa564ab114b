// Package slidingmin computes the leftmost arg-min of every fixed-length
// window over a slice of keys.
//
// For windows longer than a few elements it keeps a monotone deque of
// candidate indices: each index is pushed and popped at most once, so the
// whole pass is O(n) regardless of window length. Equal keys never evict an
// earlier index, which makes the leftmost minimum win every tie.
package slidingmin

// rescanWindow is the largest window scanned directly instead of through the
// deque.
const rescanWindow = 2

// ArgMin returns, for i = 0..len(keys)-w, the index in keys of the leftmost
// minimum of keys[i:i+w] under cmp. It returns an empty slice when
// len(keys) < w and panics when w < 1.
func ArgMin[K any](keys []K, w int, cmp func(a, b K) int) []int {
	if w < 1 {
		panic("slidingmin: window must be at least 1")
	}
	if len(keys) < w {
		return []int{}
	}
	if w <= rescanWindow {
		return rescan(keys, w, cmp)
	}
	return monotone(keys, w, cmp)
}

func monotone[K any](keys []K, w int, cmp func(a, b K) int) []int {
	out := make([]int, len(keys)-w+1)
	q := newRing(w)
	for i := range keys {
		start := i - w + 1
		for q.len() > 0 && q.front() < start {
			q.popFront()
		}
		// strict: an equal key keeps the earlier index in front
		for q.len() > 0 && cmp(keys[q.back()], keys[i]) > 0 {
			q.popBack()
		}
		q.pushBack(i)
		if start >= 0 {
			out[start] = q.front()
		}
	}
	return out
}

func rescan[K any](keys []K, w int, cmp func(a, b K) int) []int {
	out := make([]int, len(keys)-w+1)
	for start := range out {
		best := start
		for j := start + 1; j < start+w; j++ {
			if cmp(keys[j], keys[best]) < 0 {
				best = j
			}
		}
		out[start] = best
	}
	return out
}

// ring is a fixed-capacity double-ended queue of indices.
type ring struct {
	buf  []int
	head int
	n    int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]int, capacity)}
}

func (r *ring) len() int   { return r.n }
func (r *ring) front() int { return r.buf[r.head] }
func (r *ring) back() int  { return r.buf[(r.head+r.n-1)%len(r.buf)] }

func (r *ring) pushBack(x int) {
	if r.n == len(r.buf) {
		panic("slidingmin: deque overflow")
	}
	r.buf[(r.head+r.n)%len(r.buf)] = x
	r.n++
}

func (r *ring) popFront() {
	r.head = (r.head + 1) % len(r.buf)
	r.n--
}

func (r *ring) popBack() {
	r.n--
}
