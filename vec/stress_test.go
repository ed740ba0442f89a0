package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStress_PushThenDispose pushes 100,000 elements and checks Dispose hands
// back exactly what the Vec requested from the allocator.
func TestStress_PushThenDispose(t *testing.T) {
	const n = 100_000
	base := ReadMemStats()

	v := New[uint64]()
	for i := range n {
		v.Push(uint64(i) * 3)
	}
	require.Equal(t, n, v.Len())
	require.Equal(t, 131072, v.Cap())

	// Spot check nothing was corrupted across the 17 resizes.
	for i := 0; i < n; i += 997 {
		require.Equal(t, uint64(i)*3, v.At(i))
	}

	during := ReadMemStats().Sub(base)
	assert.Equal(t, int64(1), during.LiveBlocks)
	assert.Equal(t, int64(131072*8), during.LiveBytes)

	v.Dispose()

	after := ReadMemStats().Sub(base)
	assert.Equal(t, uint64(1), after.Allocs)
	assert.Equal(t, uint64(17), after.Grows)
	assert.Equal(t, after.Allocs, after.Frees, "every block must be freed")
	assert.Zero(t, after.LiveBlocks)
	assert.Zero(t, after.LiveBytes, "no bytes may remain after dispose")
}

// TestStress_ManyVecsDoNotInterfere fills several Vecs side by side and checks
// none of them sees another's writes.
func TestStress_ManyVecsDoNotInterfere(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping multi-vec stress in short mode")
	}
	base := ReadMemStats()

	vecs := make([]*Vec[int32], 8)
	for i := range vecs {
		vecs[i] = New[int32]()
	}
	for round := range 20_000 {
		for i, v := range vecs {
			v.Push(int32(i*1_000_000 + round))
		}
	}
	for i, v := range vecs {
		for round, x := range v.Slice() {
			if x != int32(i*1_000_000+round) {
				t.Fatalf("vec %d slot %d = %d", i, round, x)
			}
		}
		v.Dispose()
	}

	after := ReadMemStats().Sub(base)
	assert.Equal(t, uint64(8), after.Allocs)
	assert.Equal(t, after.Allocs, after.Frees)
	assert.Zero(t, after.LiveBytes)
}
