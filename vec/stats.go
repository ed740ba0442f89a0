package vec

import "github.com/joshuapare/rawvec/internal/rawmem"

// MemStats is a snapshot of the process-wide off-heap block counters shared by
// every Vec. Heap-backed Vecs do not appear in it.
type MemStats = rawmem.Stats

// ReadMemStats returns the current off-heap block counters.
func ReadMemStats() MemStats {
	return rawmem.Snapshot()
}
