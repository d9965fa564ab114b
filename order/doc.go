// Package order defines the capability every sampling scheme is built on: a
// total preorder over fixed-length windows ("k-mers").
//
// What
//
//   - Order[K]: Key(kmer) returns the comparison key of one k-mer (smaller is
//     preferred); Keys(text, k) streams the keys of every window of text.
//   - ToOrder[K]: a configuration that builds an immutable Order[K] for a
//     given window count w, k-mer length k and alphabet size sigma.
//   - Random: keys are mixed digests from a hasher.Hasher, streamed through
//     the hasher's batching path.
//   - Lex: keys are the base-sigma value of the k-mer, rolled in O(1) per
//     window.
//
// Contract
//
//	For every Order and every text with len(text) ≥ k,
//	Keys(text, k) yields exactly len(text)-k+1 keys and its i-th key equals
//	Key(text[i:i+k]). Key panics with ErrKmerLength when len(kmer) differs
//	from the configured k; Keys panics with ErrKmerLength when the passed k
//	differs, and with ErrWindow when text is shorter than k. Both checks run
//	before any key is produced.
//
// Concurrency
//
//	Orders are immutable after construction and safe for concurrent use.
package order
