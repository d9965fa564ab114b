// Package minimizers computes minimizer-family sampling schemes over long
// symbol sequences (DNA): a sparse, deterministic, window-stable subset of
// positions for indexing, sketching and sequence comparison.
//
// 🚀 What is in here?
//
//	A pure-Go library built from four layers:
//		• hasher/    — k-mer digests (FxHash, XXH64, rolling ntHash, seeded maphash)
//		               and batching wrappers (Unbuffered, Buffer, Eager, Split, ParallelSplit)
//		• order/     — the Order / ToOrder capability: total preorders over k-mers
//		               (Random, Lex) with streaming Keys over a whole text
//		• minimizer/ — sliding-window arg-min sampler over an inner t-mer order
//		• schemes/   — open/closed syncmer order with positional tie-breaking
//
//	plus sampling/ (pick minimizer positions, measure density) and seqgen/
//	(deterministic random sequences).
//
// ✨ Guarantees
//
//   - Determinism: same input and configuration ⇒ same keys and positions.
//   - Streaming equals single-shot: Keys(text,k)[i] == Key(text[i:i+k]) for
//     every order, and HashKmers equals per-window Hash for every hasher.
//   - Linear time: Stream and Positions run in amortized O(1) per window.
//   - Immutable instances: every built Order and Hasher is safe to share.
//
// Quick example:
//
//	cfg := schemes.DefaultOpenClosed(4)
//	cfg.Open, cfg.Closed = true, true
//	o := cfg.ToOrder(24, 21, 4)
//	pos := sampling.Positions(o, schemes.Key.Compare, seq, 24, 21)
//
// Precondition violations (wrong k-mer length, text shorter than a window)
// are programmer errors and panic with an error wrapping a package sentinel.
//
//	go get github.com/katalvlaran/minimizers
package minimizers
