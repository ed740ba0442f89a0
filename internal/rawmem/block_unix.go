//go:build unix && !linux

package rawmem

import "golang.org/x/sys/unix"

func sysMaxAlign() int { return unix.Getpagesize() }

func sysAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// No mremap outside linux: map, copy, unmap.
func sysRealloc(old []byte, newSize int) ([]byte, error) {
	data, err := sysAlloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	if err := unix.Munmap(old); err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return data, nil
}

func sysFree(data []byte) error {
	return unix.Munmap(data)
}
