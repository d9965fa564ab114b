package order

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by precondition panics.
var (
	// ErrKmerLength indicates a k-mer or k that differs from the configured k.
	ErrKmerLength = errors.New("order: k-mer length mismatch")

	// ErrWindow indicates a text shorter than one window.
	ErrWindow = errors.New("order: text shorter than window")

	// ErrSymbol indicates a symbol rank ≥ sigma in a Lex k-mer.
	ErrSymbol = errors.New("order: symbol outside alphabet")

	// ErrDigestCount indicates a hasher that yielded a different number of
	// digests than the text has windows.
	ErrDigestCount = errors.New("order: digest count does not match window count")

	// ErrKeyOverflow indicates sigma^k does not fit in a 64-bit key.
	ErrKeyOverflow = errors.New("order: key does not fit in 64 bits")
)

// Violation builds the panic value for a broken precondition: an error
// wrapping sentinel, so callers recovering it can test with errors.Is.
func Violation(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

// CheckKmer panics with ErrKmerLength unless got == want.
func CheckKmer(got, want int) {
	if got != want {
		panic(Violation(ErrKmerLength, "got %d, want %d", got, want))
	}
}

// CheckText panics with ErrKmerLength unless k == want and with ErrWindow
// unless n ≥ k.
func CheckText(n, k, want int) {
	CheckKmer(k, want)
	if n < k {
		panic(Violation(ErrWindow, "len=%d, k=%d", n, k))
	}
}
