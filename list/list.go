// Package list provides List, a singly-linked LIFO stack.
//
// Each Push allocates one node; there is no resizing and no amortized growth.
// The zero value is an empty list ready to use. List is not safe for
// concurrent mutation.
package list

// List is a singly-linked stack of T.
type List[T any] struct {
	head *node[T]
	len  int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Push places elem on top of the stack.
func (l *List[T]) Push(elem T) {
	l.head = &node[T]{elem: elem, next: l.head}
	l.len++
}

// Pop removes and returns the top element. ok is false when the list is empty.
func (l *List[T]) Pop() (elem T, ok bool) {
	n := l.head
	if n == nil {
		return elem, false
	}
	l.head = n.next
	l.len--
	elem = n.elem
	n.next = nil
	return elem, true
}

// Peek returns the top element without removing it.
func (l *List[T]) Peek() (elem T, ok bool) {
	if l.head == nil {
		return elem, false
	}
	return l.head.elem, true
}

// PeekMut returns a pointer to the top element for in-place updates.
// The pointer is valid until the element is popped.
func (l *List[T]) PeekMut() (*T, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.elem, true
}

// Clear unlinks every node one at a time, so long lists are released without
// deep recursion or a chain the collector has to walk in one go.
func (l *List[T]) Clear() {
	n := l.head
	l.head = nil
	l.len = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}
