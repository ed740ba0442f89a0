package vec

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handle records the order its values are dropped in.
type handle struct {
	id  int
	log *[]int
}

func (h handle) Drop() { *h.log = append(*h.log, h.id) }

// counter drops through a pointer receiver.
type counter struct {
	drops *int
}

func (c *counter) Drop() { *c.drops++ }

func TestDispose_DropsLastFirst(t *testing.T) {
	var dropped []int
	v := New[handle]()
	for i := range 5 {
		v.Push(handle{id: i, log: &dropped})
	}

	v.Dispose()

	assert.Equal(t, []int{4, 3, 2, 1, 0}, dropped)
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	checkInvariants(t, v)
}

func TestDispose_PointerReceiverDropper(t *testing.T) {
	drops := 0
	v := New[counter]()
	for range 3 {
		v.Push(counter{drops: &drops})
	}
	v.Dispose()
	assert.Equal(t, 3, drops)
}

func TestDispose_PointerElements(t *testing.T) {
	drops := 0
	v := New[*counter]()
	v.Push(&counter{drops: &drops})
	v.Push(&counter{drops: &drops})
	v.Dispose()
	assert.Equal(t, 2, drops)
}

func TestDispose_InterfaceElements(t *testing.T) {
	var dropped []int
	drops := 0

	v := New[Dropper]()
	v.Push(handle{id: 1, log: &dropped})
	v.Push(nil)
	v.Push(&counter{drops: &drops})
	v.Dispose()

	assert.Equal(t, []int{1}, dropped)
	assert.Equal(t, 1, drops)
}

func TestPopAndRemove_DoNotDrop(t *testing.T) {
	var dropped []int
	v := New[handle]()
	for i := range 4 {
		v.Push(handle{id: i, log: &dropped})
	}

	_, ok := v.Pop()
	require.True(t, ok)
	_, ok = v.Remove(0)
	require.True(t, ok)
	assert.Empty(t, dropped, "moved-out elements belong to the caller")

	v.Dispose()
	assert.Equal(t, []int{2, 1}, dropped, "only elements still inside are dropped")
}

func TestDispose_Twice(t *testing.T) {
	base := ReadMemStats()

	v := fromValues(t, 1, 2, 3)
	v.Dispose()
	v.Dispose()

	d := ReadMemStats().Sub(base)
	assert.Equal(t, d.Allocs, d.Frees, "block must be freed exactly once")
	assert.Zero(t, d.LiveBlocks)
}

func TestDispose_NeverAllocated(t *testing.T) {
	base := ReadMemStats()

	v := New[int]()
	v.Dispose()

	d := ReadMemStats().Sub(base)
	assert.Zero(t, d.Frees, "an empty Vec has no block to free")
}

func TestDispose_ReuseAfter(t *testing.T) {
	v := fromValues(t, 1, 2, 3)
	v.Dispose()

	v.Push(9)
	assert.Equal(t, 1, v.Cap(), "a disposed Vec starts over from zero capacity")
	assert.Equal(t, []int{9}, collect(v))
	checkInvariants(t, v)
}

func TestTake_MovesOwnership(t *testing.T) {
	base := ReadMemStats()

	src := New[int32]()
	for i := range 10 {
		src.Push(int32(i))
	}
	ptr := &src.Slice()[0]

	dst := src.Take()
	assert.Zero(t, src.Len())
	assert.Zero(t, src.Cap())
	checkInvariants(t, src)

	require.Equal(t, 10, dst.Len())
	require.Equal(t, 16, dst.Cap())
	assert.Same(t, ptr, &dst.Slice()[0], "take must move the block, not copy it")
	checkInvariants(t, dst)

	d := ReadMemStats().Sub(base)
	assert.Equal(t, int64(1), d.LiveBlocks, "take must not duplicate the block")

	src.Dispose()
	dst.Dispose()

	d = ReadMemStats().Sub(base)
	assert.Zero(t, d.LiveBlocks)
	assert.Equal(t, uint64(1), d.Frees)
}

func TestClone_IsIndependent(t *testing.T) {
	base := ReadMemStats()

	src := New[uint64]()
	for i := range 5 {
		src.Push(uint64(i))
	}

	dup := src.Clone()
	assert.Equal(t, collect(src), collect(dup))
	assert.Equal(t, src.Cap(), dup.Cap())
	checkInvariants(t, dup)

	dup.Set(0, 100)
	dup.Push(5)
	assert.Equal(t, uint64(0), src.At(0), "clone must not share the block")
	assert.Equal(t, 5, src.Len())

	d := ReadMemStats().Sub(base)
	assert.Equal(t, int64(2), d.LiveBlocks)

	src.Dispose()
	dup.Dispose()
	assert.Zero(t, ReadMemStats().Sub(base).LiveBlocks)
}

func TestClone_Empty(t *testing.T) {
	var v Vec[int]
	dup := v.Clone()
	assert.Zero(t, dup.Cap())
	dup.Push(1)
	dup.Dispose()
}

func TestClone_HeapBacked(t *testing.T) {
	src := fromValues(t, "a", "b")
	dup := src.Clone()
	defer dup.Dispose()

	dup.Set(1, "z")
	assert.Equal(t, []string{"a", "b"}, collect(src))
	assert.Equal(t, []string{"a", "z"}, collect(dup))
}

// TestLeakedVec_ReportedNotFreed drops a Vec without Dispose and waits for the
// runtime cleanup to log it. The block stays mapped.
func TestLeakedVec_ReportedNotFreed(t *testing.T) {
	if testing.Short() {
		t.Skip("relies on garbage collection timing")
	}
	out := captureLog(t)
	base := ReadMemStats()

	func() {
		v := New[int32]()
		for i := range 48 {
			v.Push(int32(i))
		}
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return strings.Contains(out.String(), "bytes=256")
	}, 5*time.Second, 10*time.Millisecond, "leaked Vec was never reported")
	assert.Contains(t, out.String(), "never disposed")

	delta := ReadMemStats().Sub(base)
	assert.Equal(t, uint64(0), delta.Frees, "leaked block must not be freed")
	assert.GreaterOrEqual(t, delta.LiveBlocks, int64(1))
}
