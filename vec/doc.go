// Package vec provides Vec, a growable contiguous array with explicit control over
// its backing memory.
//
// # Overview
//
// A Vec tracks three things: a backing block, its capacity in slots, and the
// number of live elements (its length). Slots [0, Len) hold elements; slots
// [Len, Cap) are uninitialized and never read.
//
//	v := vec.New[int]()
//	defer v.Dispose()
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 0)          // [0 1 2]
//	x, ok := v.Remove(1)    // x == 1, ok == true
//	top, _ := v.Pop()       // top == 2
//
// # Growth
//
// Capacity starts at zero and only grows inside Push and Insert when the array
// is full: 0 → 1 → 2 → 4 → 8 ... Capacity never shrinks; popping everything
// leaves the block in place for reuse until Dispose.
//
// # Backing Memory
//
// Element types without Go pointers (integers, floats, bools, and arrays or
// structs of them) are stored in an off-heap block from the operating system.
// Growing such a block resizes it in place where the platform allows (mremap on
// linux). Element types that carry pointers are stored in a Go-managed slice so
// the garbage collector can see them. Both follow the same growth policy and the
// same rules. OffHeap reports which one a Vec uses.
//
// # Ownership
//
// A Vec owns its block and every element in it. Pop and Remove hand the element
// to the caller; the Vec keeps no copy. Dispose runs Drop on every remaining
// element that implements Dropper, last element first, then releases the block.
// An off-heap Vec that becomes unreachable without Dispose is reported through
// the package logger at warn level and its block is leaked, so slices borrowed
// from it stay readable.
//
// Do not copy a Vec value; use Take to move it or Clone to duplicate it.
//
// # Failure Policy
//
// Allocation failure, size overflow, and Insert with an index outside [0, Len]
// panic. These leave no usable state behind. Pop on an empty Vec and Remove with
// an index outside [0, Len) are ordinary outcomes and report ok == false.
//
// # Thread Safety
//
// Vec is not safe for concurrent mutation. Concurrent reads with no writer are fine.
package vec
