// Package hasher provides k-mer digest functions and the batching wrappers
// that decide how the digests of every window of a text are materialized.
//
// What
//
//   - Hasher[Out]: Hash(t) for one byte slice, HashKmers(k, t) for all
//     len(t)-k+1 sliding windows of length k, left to right.
//   - Concrete hashers: FxHash, XXHash, NtHash (rolling, k ≤ NtMaxK), MapHash (seeded).
//   - Wrappers: Unbuffered, Buffer, Eager, Split, ParallelSplit.
//
// Equivalence
//
//	For every hasher and every wrapper, HashKmers(k, t) yields exactly
//	Hash(t[i:i+k]) for i = 0..len(t)-k. Rolling hashers reuse state between
//	adjacent windows and must still produce the from-scratch value. The only
//	exception is the two-way Split family, which drops the final window when
//	the number of windows is odd.
//
// Preconditions
//
//	HashKmers requires 1 ≤ k ≤ len(t). The check happens when HashKmers is
//	called, before any digest is produced; a violation panics with an error
//	wrapping ErrWindow. A wrapper whose inner sequence yields the wrong number
//	of digests panics with ErrBufferSize. Both are caller defects, not
//	conditions to branch on.
//
// Usage
//
//	h := hasher.NewEager[uint64](hasher.NtHash{})
//	for d := range h.HashKmers(21, seq) {
//	    // ...
//	}
//
// Concurrency
//
//	All hashers and wrappers are immutable values and safe for concurrent use.
//	ParallelSplit computes its two halves on separate goroutines.
package hasher
