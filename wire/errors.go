package wire

import (
	"errors"
	"fmt"
)

// Decoding errors
var (
	// ErrBufferExhausted reports a read (tag, varint continuation,
	// fixed-width value or length-delimited payload) that requested more
	// bytes than remain in the buffer.
	ErrBufferExhausted = errors.New("buffer exhausted")

	// ErrDepthExceeded reports a nested decode attempt past the decoder's
	// maximum nesting depth.
	ErrDepthExceeded = errors.New("max nesting depth exceeded")
)

// UnsupportedWireTypeError reports a tag whose wire-type discriminant is a
// group marker or an unrecognized code.
type UnsupportedWireTypeError struct {
	Code byte
}

// Error implements the error interface.
func (e *UnsupportedWireTypeError) Error() string {
	return fmt.Sprintf("unsupported wire type: %d", e.Code)
}

// Is implements errors.Is for compatibility.
func (e *UnsupportedWireTypeError) Is(target error) bool {
	_, ok := target.(*UnsupportedWireTypeError)
	return ok
}
