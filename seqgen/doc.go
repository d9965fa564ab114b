// Package seqgen generates deterministic random symbol sequences for tests,
// examples and density measurements.
//
// What
//
//   - Random(n, opts...) draws n symbols uniformly from an alphabet
//     (default "ACGT") using a seeded math/rand source.
//   - Encode maps nucleotide text to ranks 0..3 for orders that work on
//     symbol ranks (order.Lex with sigma=4).
//
// Determinism
//
//	Same seed ⇒ identical sequence on every platform. WithSeed(0) uses a fixed
//	default seed, never the clock.
//
// Usage
//
//	seq, err := seqgen.Random(1_000_000, seqgen.WithSeed(42))
//	if err != nil {
//	    // ErrBadSize
//	}
//	ranks, err := seqgen.Encode(seq)
package seqgen
