package vec

import (
	"runtime"

	"github.com/joshuapare/rawvec/internal/logger"
)

// Dropper is implemented by elements that own resources of their own.
// Dispose calls Drop once on every element still in the Vec. Elements taken
// out with Pop or Remove are never dropped by the Vec.
type Dropper interface {
	Drop()
}

// Dispose drops every element, last first, then releases the backing block.
// The Vec is empty with zero capacity afterwards and may be reused.
func (v *Vec[T]) Dispose() {
	capacity := len(v.slots)
	dropped := 0
	for {
		elem, ok := v.Pop()
		if !ok {
			break
		}
		if drop(&elem) {
			dropped++
		}
	}
	if capacity > 0 {
		v.releaseBlock()
	}
	logger.Debug("vec: dispose", "cap", capacity, "dropped", dropped)
}

// drop runs the element's cleanup. T itself is checked first so pointer and
// interface element types match; then *T for pointer-receiver methods.
func drop[T any](elem *T) bool {
	if d, ok := any(*elem).(Dropper); ok {
		d.Drop()
		return true
	}
	if d, ok := any(elem).(Dropper); ok {
		d.Drop()
		return true
	}
	return false
}

// Take moves the contents and the backing block into a new Vec and leaves v
// empty with zero capacity. No memory is copied.
func (v *Vec[T]) Take() *Vec[T] {
	out := &Vec[T]{
		slots:  v.slots,
		length: v.length,
		lay:    v.lay,
	}
	if v.owner != nil {
		v.cleanup.Stop()
		out.owner = v.owner
		out.cleanup = runtime.AddCleanup(out, reportLeaked, out.owner)
	}
	v.slots = nil
	v.length = 0
	v.owner = nil
	v.cleanup = runtime.Cleanup{}
	return out
}

// Clone returns an independent Vec with its own block of the same capacity
// holding a copy of every element.
func (v *Vec[T]) Clone() *Vec[T] {
	out := &Vec[T]{lay: v.lay}
	if len(v.slots) == 0 {
		return out
	}
	out.resize(len(v.slots))
	copy(out.slots, v.slots[:v.length])
	out.length = v.length
	return out
}
