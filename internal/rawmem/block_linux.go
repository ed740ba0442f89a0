//go:build linux

package rawmem

import "golang.org/x/sys/unix"

func sysMaxAlign() int { return unix.Getpagesize() }

func sysAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// sysRealloc lets the kernel move the pages; the old mapping is gone on success
// and intact on failure.
func sysRealloc(old []byte, newSize int) ([]byte, error) {
	return unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
}

func sysFree(data []byte) error {
	return unix.Munmap(data)
}
