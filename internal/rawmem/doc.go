// Package rawmem hands out raw, untyped memory blocks that live outside the Go heap.
//
// # Overview
//
// A Block is an exclusively owned region of bytes obtained from the operating
// system. The package exposes three primitives and nothing else:
//
//   - Alloc(size, align): request a fresh block
//   - Grow(b, newSize): enlarge a block, keeping every existing byte
//   - Free(b): release a block
//
// Contents of a fresh block, and of the tail added by Grow, are unspecified.
// Callers must write a byte before reading it.
//
// # Backends
//
// The backend is chosen at build time:
//
//	linux        mmap / mremap(MREMAP_MAYMOVE) / munmap  (Grow is a true resize)
//	other unix   mmap / mmap+copy+munmap / munmap
//	windows      VirtualAlloc / VirtualAlloc+copy+VirtualFree / VirtualFree
//	elsewhere    Go heap word slices (Free is left to the collector)
//
// Blocks from the mapped backends are page aligned. The Go heap backend only
// guarantees word alignment; MaxAlign reports the limit for the current build.
//
// # Pointers
//
// The garbage collector does not scan blocks. Never store a Go pointer (or a
// value that contains one: strings, slices, maps, interfaces, channels, funcs)
// in a Block.
//
// # Accounting
//
// Every Alloc, Grow and Free updates process-wide counters readable with
// Snapshot. Tests use them to prove that a sequence of operations released
// everything it requested.
//
// # Thread Safety
//
// The primitives and counters are safe for concurrent use. A single Block is
// not: its owner must serialize Grow and Free.
package rawmem
