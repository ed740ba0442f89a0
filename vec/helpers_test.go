package vec

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"unsafe"

	"github.com/joshuapare/rawvec/internal/logger"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs fn and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a panic matching %v", target)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %q does not match %q", err, target)
}

// checkInvariants verifies the structural rules every Vec must keep between operations.
func checkInvariants[T any](t *testing.T, v *Vec[T]) {
	t.Helper()

	require.GreaterOrEqual(t, v.length, 0, "length must be non-negative")
	require.LessOrEqual(t, v.length, len(v.slots), "length must not exceed capacity")

	if len(v.slots) == 0 {
		require.Nil(t, v.slots, "zero capacity must use the nil sentinel")
		require.Nil(t, v.owner, "zero capacity must not own a block")
		require.Zero(t, v.length)
		return
	}

	if v.lay.offHeap {
		require.NotNil(t, v.owner, "off-heap Vec with capacity must own a block")
		require.False(t, v.owner.block.IsZero())
		require.Equal(t, len(v.slots)*v.lay.size, v.owner.block.Size(), "block size must be cap * sizeof(T)")
		require.Equal(t, v.owner.block.Ptr(), unsafe.Pointer(unsafe.SliceData(v.slots)), "slots must start at the block")
	} else {
		require.Nil(t, v.owner, "heap-backed Vec must not own a raw block")
	}
}

// collect copies the live elements out.
func collect[T any](v *Vec[T]) []T {
	out := make([]T, v.Len())
	copy(out, v.Slice())
	return out
}

// fromValues builds a Vec by pushing values in order.
func fromValues[T any](t *testing.T, values ...T) *Vec[T] {
	t.Helper()
	v := New[T]()
	t.Cleanup(v.Dispose)
	for _, x := range values {
		v.Push(x)
	}
	return v
}

// logBuffer is written from the runtime cleanup goroutine and read by the test.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLog routes the package logger into a buffer for the rest of the test.
func captureLog(t *testing.T) *logBuffer {
	t.Helper()
	out := &logBuffer{}
	prev := logger.L()
	logger.Set(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logger.Set(prev) })
	return out
}
