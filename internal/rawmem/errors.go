package rawmem

import "errors"

var (
	// ErrInvalidSize indicates a non-positive size, or a Grow that would not enlarge the block.
	ErrInvalidSize = errors.New("rawmem: invalid block size")

	// ErrInvalidAlign indicates an alignment that is not a power of two or exceeds MaxAlign.
	ErrInvalidAlign = errors.New("rawmem: invalid alignment")

	// ErrNilBlock indicates an operation on the zero Block.
	ErrNilBlock = errors.New("rawmem: nil block")

	// ErrOutOfMemory indicates the operating system refused the request.
	ErrOutOfMemory = errors.New("rawmem: out of memory")
)
