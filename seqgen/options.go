// SPDX-License-Identifier: MIT
// Package: minimizers/seqgen
//
// options.go — functional options for sequence generation.
//
// Contract:
//   • Options mutate a config value before generation starts.
//   • Option constructors panic on nil or empty inputs.
//   • Later options override earlier ones.

package seqgen

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when no seed or a zero seed is supplied.
const defaultSeed int64 = 1

// defaultAlphabet is the nucleotide alphabet in rank order.
const defaultAlphabet = "ACGT"

// Option customizes Random.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	alphabet []byte
}

func newConfig(opts ...Option) config {
	cfg := config{alphabet: []byte(defaultAlphabet)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed draws symbols from a source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws symbols from r. The caller owns r; it is not goroutine-safe.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation))
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAlphabet draws symbols uniformly from the given bytes.
func WithAlphabet(symbols string) Option {
	if symbols == "" {
		panic(fmt.Errorf("%w: WithAlphabet(\"\")", ErrOptionViolation))
	}
	return func(c *config) {
		c.alphabet = []byte(symbols)
	}
}

// rngFromSeed returns a deterministic source; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
