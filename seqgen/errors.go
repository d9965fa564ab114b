// SPDX-License-Identifier: MIT
// Package: minimizers/seqgen
//
// errors.go — sentinel errors for the seqgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context with %w.
//   • Option constructors panic on meaningless input; Random and Encode
//     return errors.

package seqgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative sequence length.
var ErrBadSize = errors.New("seqgen: invalid size")

// ErrSymbol indicates a byte outside the nucleotide alphabet passed to Encode.
var ErrSymbol = errors.New("seqgen: symbol outside alphabet")

// ErrOptionViolation is the panic value of an option constructor given a
// meaningless argument.
var ErrOptionViolation = errors.New("seqgen: invalid option value")

// seqgenErrorf prefixes a wrapped sentinel with the failing method name.
func seqgenErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
