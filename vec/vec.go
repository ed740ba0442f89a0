package vec

import (
	"fmt"
	"runtime"
)

// Vec is a growable contiguous array of T. The zero value is an empty Vec
// ready to use.
type Vec[T any] struct {
	_ noCopy

	// slots views the whole block; len(slots) is the capacity.
	// nil while the capacity is zero.
	slots []T

	// length counts the live elements in slots[:length].
	length int

	// lay is computed on first use.
	lay layout

	// owner and cleanup are set only for off-heap blocks.
	owner   *blockOwner
	cleanup runtime.Cleanup
}

// New returns an empty Vec with no backing block.
// It panics with ErrZeroSizedType if T occupies no memory.
func New[T any]() *Vec[T] {
	return &Vec[T]{lay: layoutOf[T]()}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the number of slots backed by memory.
func (v *Vec[T]) Cap() int { return len(v.slots) }

// Push appends elem, growing the block first when it is full.
func (v *Vec[T]) Push(elem T) {
	if v.length == len(v.slots) {
		v.grow()
	}
	v.slots[v.length] = elem
	v.length++
}

// Pop removes and returns the last element. ok is false when the Vec is empty.
func (v *Vec[T]) Pop() (elem T, ok bool) {
	if v.length == 0 {
		return elem, false
	}
	v.length--
	elem = v.slots[v.length]
	v.vacate(v.length)
	return elem, true
}

// Insert places elem at index, shifting elements [index, Len) one slot right.
// It panics with ErrIndexOutOfRange unless 0 <= index <= Len.
func (v *Vec[T]) Insert(index int, elem T) {
	if index < 0 || index > v.length {
		panic(fmt.Errorf("%w: insert at %d with len %d", ErrIndexOutOfRange, index, v.length))
	}
	if v.length == len(v.slots) {
		v.grow()
	}
	// copy is a memmove, so the overlapping shift is safe.
	copy(v.slots[index+1:v.length+1], v.slots[index:v.length])
	v.slots[index] = elem
	v.length++
}

// Remove takes out the element at index, shifting elements (index, Len) one
// slot left. ok is false when index is outside [0, Len); the Vec is unchanged.
func (v *Vec[T]) Remove(index int) (elem T, ok bool) {
	if index < 0 || index >= v.length {
		return elem, false
	}
	elem = v.slots[index]
	copy(v.slots[index:v.length-1], v.slots[index+1:v.length])
	v.length--
	v.vacate(v.length)
	return elem, true
}

// vacate resets a slot that just left the live prefix so heap backings do not
// keep the moved-out value reachable.
func (v *Vec[T]) vacate(i int) {
	var zero T
	v.slots[i] = zero
}

// noCopy lets `go vet` report Vec values copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
