package vec

import "errors"

var (
	// ErrAllocFailed indicates the allocator refused to provide or grow the backing block.
	ErrAllocFailed = errors.New("vec: allocation failed")

	// ErrCapacityOverflow indicates the byte size of the requested capacity does not fit in an int.
	ErrCapacityOverflow = errors.New("vec: capacity overflow")

	// ErrIndexOutOfRange indicates an Insert index outside [0, Len].
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrZeroSizedType indicates an element type with no storage, which Vec does not support.
	ErrZeroSizedType = errors.New("vec: zero-sized element type")

	// ErrReleaseFailed indicates the backing block could not be returned to the allocator.
	ErrReleaseFailed = errors.New("vec: release failed")
)
