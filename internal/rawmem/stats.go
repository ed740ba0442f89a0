package rawmem

import "sync/atomic"

// Stats is a point-in-time copy of the process-wide block counters.
type Stats struct {
	Allocs uint64 // successful Alloc calls
	Grows  uint64 // successful Grow calls
	Frees  uint64 // successful Free calls

	LiveBlocks int64 // blocks allocated and not yet freed
	LiveBytes  int64 // bytes held by live blocks
	PeakBytes  int64 // high-water mark of LiveBytes
}

type statCounters struct {
	allocs     atomic.Uint64
	grows      atomic.Uint64
	frees      atomic.Uint64
	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
	peakBytes  atomic.Int64
}

var counters statCounters

func (c *statCounters) recordAlloc(size int) {
	c.allocs.Add(1)
	c.liveBlocks.Add(1)
	c.bumpPeak(c.liveBytes.Add(int64(size)))
}

func (c *statCounters) recordGrow(oldSize, newSize int) {
	c.grows.Add(1)
	c.bumpPeak(c.liveBytes.Add(int64(newSize - oldSize)))
}

func (c *statCounters) recordFree(size int) {
	c.frees.Add(1)
	c.liveBlocks.Add(-1)
	c.liveBytes.Add(-int64(size))
}

func (c *statCounters) bumpPeak(live int64) {
	for {
		peak := c.peakBytes.Load()
		if live <= peak || c.peakBytes.CompareAndSwap(peak, live) {
			return
		}
	}
}

// Snapshot returns the current counters.
func Snapshot() Stats {
	return Stats{
		Allocs:     counters.allocs.Load(),
		Grows:      counters.grows.Load(),
		Frees:      counters.frees.Load(),
		LiveBlocks: counters.liveBlocks.Load(),
		LiveBytes:  counters.liveBytes.Load(),
		PeakBytes:  counters.peakBytes.Load(),
	}
}

// Sub returns the change from base to s. PeakBytes is carried over from s.
func (s Stats) Sub(base Stats) Stats {
	return Stats{
		Allocs:     s.Allocs - base.Allocs,
		Grows:      s.Grows - base.Grows,
		Frees:      s.Frees - base.Frees,
		LiveBlocks: s.LiveBlocks - base.LiveBlocks,
		LiveBytes:  s.LiveBytes - base.LiveBytes,
		PeakBytes:  s.PeakBytes,
	}
}
