package hasher

import (
	"errors"
	"fmt"
)

var (
	// ErrWindow indicates a window length outside [1, len(text)].
	ErrWindow = errors.New("hasher: window length out of range")

	// ErrBufferSize indicates that an inner digest sequence produced a
	// different number of values than the buffer was sized for.
	ErrBufferSize = errors.New("hasher: digest count does not match buffer size")
)

// violation builds the panic value for a broken precondition.
func violation(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
