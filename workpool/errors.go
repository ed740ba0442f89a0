package workpool

import "errors"

var (
	// ErrInvalidSize indicates a pool created with fewer than one worker.
	ErrInvalidSize = errors.New("workpool: size must be at least 1")

	// ErrClosed indicates Execute was called after Close.
	ErrClosed = errors.New("workpool: pool is closed")

	// ErrNilJob indicates Execute was called with a nil function.
	ErrNilJob = errors.New("workpool: nil job")
)
