package vec

import (
	"fmt"
	"reflect"
	"runtime"
	"unsafe"

	"github.com/joshuapare/rawvec/internal/buf"
	"github.com/joshuapare/rawvec/internal/logger"
	"github.com/joshuapare/rawvec/internal/rawmem"
)

// layout describes how T is stored. size == 0 means not yet computed.
type layout struct {
	size    int
	align   int
	offHeap bool
}

func layoutOf[T any]() layout {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		panic(fmt.Errorf("%w: %T", ErrZeroSizedType, zero))
	}
	align := int(unsafe.Alignof(zero))
	return layout{
		size:    size,
		align:   align,
		offHeap: !hasPointers(reflect.TypeFor[T]()) && align <= rawmem.MaxAlign(),
	}
}

// hasPointers reports whether values of t hold anything the garbage collector
// must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// blockOwner holds an off-heap block. The runtime cleanup only reads it; the
// block is released by Dispose alone.
type blockOwner struct {
	block rawmem.Block
}

// nextCap returns the capacity after one growth step: 1 from empty, double otherwise.
func nextCap(capacity int) int {
	if capacity == 0 {
		return 1
	}
	doubled, ok := buf.AddOverflowSafe(capacity, capacity)
	if !ok {
		panic(fmt.Errorf("%w: cannot double %d slots", ErrCapacityOverflow, capacity))
	}
	return doubled
}

// grow is called only when the block is full.
func (v *Vec[T]) grow() {
	v.resize(nextCap(len(v.slots)))
}

// resize moves the Vec onto a block of newCap slots, keeping slots [0, Len).
// newCap must exceed the current capacity.
func (v *Vec[T]) resize(newCap int) {
	if v.lay.size == 0 {
		v.lay = layoutOf[T]()
	}
	oldCap := len(v.slots)

	size, err := buf.BlockSize(newCap, v.lay.size)
	if err != nil {
		panic(fmt.Errorf("%w: %d slots: %w", ErrCapacityOverflow, newCap, err))
	}

	if v.lay.offHeap {
		v.resizeOffHeap(newCap, size)
	} else {
		next := make([]T, newCap)
		copy(next, v.slots[:v.length])
		v.slots = next
	}

	logger.Debug("vec: grow",
		"old_cap", oldCap,
		"new_cap", newCap,
		"bytes", size,
		"off_heap", v.lay.offHeap,
	)
}

func (v *Vec[T]) resizeOffHeap(newCap, size int) {
	if v.owner == nil {
		block, err := rawmem.Alloc(size, v.lay.align)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrAllocFailed, err))
		}
		v.owner = &blockOwner{block: block}
		v.cleanup = runtime.AddCleanup(v, reportLeaked, v.owner)
	} else {
		block, err := rawmem.Grow(v.owner.block, size)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrAllocFailed, err))
		}
		v.owner.block = block
	}
	v.slots = unsafe.Slice((*T)(v.owner.block.Ptr()), newCap)
}

// releaseBlock returns the backing memory and puts the Vec back in the empty state.
func (v *Vec[T]) releaseBlock() {
	if owner := v.owner; owner != nil {
		v.cleanup.Stop()
		v.cleanup = runtime.Cleanup{}
		v.owner = nil

		block := owner.block
		owner.block = rawmem.Block{}
		if err := rawmem.Free(block); err != nil {
			panic(fmt.Errorf("%w: %w", ErrReleaseFailed, err))
		}
	}
	v.slots = nil
	v.length = 0
}

// reportLeaked runs on the cleanup goroutine for a Vec dropped without
// Dispose. The block is not freed: slices borrowed from the Vec may still be in
// use and nothing ties their lifetime to it.
func reportLeaked(owner *blockOwner) {
	if owner.block.IsZero() {
		return
	}
	logger.Warn("vec: Vec was never disposed, its block is leaked", "bytes", owner.block.Size())
}
