package schemes

import "errors"

var (
	// ErrBadWindow indicates fewer than one k-mer per window.
	ErrBadWindow = errors.New("schemes: window must hold at least one k-mer")

	// ErrTmerLength indicates a t-mer length outside [1, k].
	ErrTmerLength = errors.New("schemes: t-mer length out of range")

	// ErrBadOffset indicates a negative open-syncmer offset.
	ErrBadOffset = errors.New("schemes: negative offset")

	// ErrConfig indicates a configuration document that cannot be decoded.
	ErrConfig = errors.New("schemes: invalid configuration")
)
