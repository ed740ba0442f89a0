package rawmem

import (
	"fmt"
	"unsafe"
)

// Block is a raw memory region. The zero Block is the "no memory" sentinel:
// it has no address and must never be grown or freed.
type Block struct {
	data []byte
}

// Ptr returns the start address of the block, or nil for the zero Block.
func (b Block) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b.data))
}

// Size returns the number of usable bytes.
func (b Block) Size() int { return len(b.data) }

// IsZero reports whether b is the sentinel.
func (b Block) IsZero() bool { return len(b.data) == 0 }

// Bytes exposes the block as a byte slice. The slice is invalid after Grow or Free.
func (b Block) Bytes() []byte { return b.data }

// MaxAlign returns the largest alignment Alloc accepts on this build.
func MaxAlign() int { return sysMaxAlign() }

// Alloc returns a fresh block of size bytes aligned to align.
func Alloc(size, align int) (Block, error) {
	if size <= 0 {
		return Block{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if align <= 0 || align&(align-1) != 0 || align > sysMaxAlign() {
		return Block{}, fmt.Errorf("%w: %d", ErrInvalidAlign, align)
	}

	data, err := sysAlloc(size)
	if err != nil {
		return Block{}, fmt.Errorf("%w: alloc %d bytes: %w", ErrOutOfMemory, size, err)
	}

	counters.recordAlloc(size)
	return Block{data: data}, nil
}

// Grow enlarges b to newSize bytes. Bytes [0, b.Size()) are preserved; the
// returned block replaces b, which must not be used afterwards. On error b is
// left untouched and still owned by the caller.
func Grow(b Block, newSize int) (Block, error) {
	if b.IsZero() {
		return Block{}, ErrNilBlock
	}
	oldSize := len(b.data)
	if newSize <= oldSize {
		return Block{}, fmt.Errorf("%w: grow %d -> %d", ErrInvalidSize, oldSize, newSize)
	}

	data, err := sysRealloc(b.data, newSize)
	if err != nil {
		return Block{}, fmt.Errorf("%w: grow %d -> %d bytes: %w", ErrOutOfMemory, oldSize, newSize, err)
	}

	counters.recordGrow(oldSize, newSize)
	return Block{data: data}, nil
}

// Free releases b. The block and any slice derived from it are invalid afterwards.
func Free(b Block) error {
	if b.IsZero() {
		return ErrNilBlock
	}
	size := len(b.data)
	if err := sysFree(b.data); err != nil {
		return fmt.Errorf("rawmem: free %d bytes: %w", size, err)
	}
	counters.recordFree(size)
	return nil
}
