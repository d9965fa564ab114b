package seqgen

const (
	methodRandom = "Random"
	methodEncode = "Encode"
)

// Random returns n symbols drawn uniformly from the configured alphabet.
//
// Errors: ErrBadSize if n < 0.
//
// Complexity: O(n) time and space.
func Random(n int, opts ...Option) ([]byte, error) {
	if n < 0 {
		return nil, seqgenErrorf(methodRandom, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)

	out := make([]byte, n)
	m := len(cfg.alphabet)
	for i := range out {
		out[i] = cfg.alphabet[cfg.rng.Intn(m)]
	}
	return out, nil
}

// Encode maps A/C/G/T (either case) to 0/1/2/3 in a new slice.
//
// Errors: ErrSymbol on any other byte.
func Encode(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, b := range seq {
		switch b {
		case 'A', 'a':
			out[i] = 0
		case 'C', 'c':
			out[i] = 1
		case 'G', 'g':
			out[i] = 2
		case 'T', 't':
			out[i] = 3
		default:
			return nil, seqgenErrorf(methodEncode, ErrSymbol, "byte %q at %d", b, i)
		}
	}
	return out, nil
}
