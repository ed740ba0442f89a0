package vec

// Slice returns the live elements as a slice borrowed from the Vec.
//
// Writes through the slice are visible in the Vec. The slice is capped at Len,
// so append on it copies instead of reaching into uninitialized slots. It is
// invalid after the next Push or Insert that grows the Vec, and after Dispose
// or Take.
func (v *Vec[T]) Slice() []T {
	return v.slots[:v.length:v.length]
}

// At returns the element at index i. It panics if i is outside [0, Len).
func (v *Vec[T]) At(i int) T {
	return v.slots[:v.length][i]
}

// Set overwrites the element at index i. It panics if i is outside [0, Len).
func (v *Vec[T]) Set(i int, elem T) {
	v.slots[:v.length][i] = elem
}

// OffHeap reports whether elements live in memory outside the Go heap.
func (v *Vec[T]) OffHeap() bool {
	if v.lay.size == 0 {
		v.lay = layoutOf[T]()
	}
	return v.lay.offHeap
}
