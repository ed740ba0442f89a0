package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestList_Basics replays push 1,2,3; pop 3,2; push 4,5; pop 5,4,1; empty.
func TestList_Basics(t *testing.T) {
	l := New[int]()

	_, ok := l.Pop()
	require.False(t, ok, "empty list must pop nothing")

	l.Push(1)
	l.Push(2)
	l.Push(3)

	for _, want := range []int{3, 2} {
		x, ok := l.Pop()
		require.True(t, ok)
		assert.Equal(t, want, x)
	}

	l.Push(4)
	l.Push(5)

	for _, want := range []int{5, 4, 1} {
		x, ok := l.Pop()
		require.True(t, ok)
		assert.Equal(t, want, x)
	}

	_, ok = l.Pop()
	assert.False(t, ok)
	assert.Zero(t, l.Len())
}

func TestList_ZeroValue(t *testing.T) {
	var l List[string]
	l.Push("a")
	x, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", x)
	assert.Equal(t, 1, l.Len())
}

func TestList_Peek(t *testing.T) {
	l := New[int]()
	_, ok := l.Peek()
	assert.False(t, ok)

	_, ok = l.PeekMut()
	assert.False(t, ok)

	l.Push(1)
	l.Push(2)

	x, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, l.Len(), "peek must not remove")

	p, ok := l.PeekMut()
	require.True(t, ok)
	*p = 42

	x, _ = l.Pop()
	assert.Equal(t, 42, x)
	x, _ = l.Pop()
	assert.Equal(t, 1, x)
}

func TestList_Long(t *testing.T) {
	l := New[int]()
	for i := range 100_000 {
		l.Push(i)
	}
	require.Equal(t, 100_000, l.Len())

	l.Clear()
	assert.Zero(t, l.Len())
	_, ok := l.Pop()
	assert.False(t, ok)

	l.Push(7)
	x, _ := l.Pop()
	assert.Equal(t, 7, x, "list must be reusable after Clear")
}
