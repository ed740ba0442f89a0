//go:build !unix && !windows

package rawmem

import "unsafe"

const wordSize = 8

func sysMaxAlign() int { return wordSize }

// Backed by a []uint64 so the first byte is word aligned. The collector keeps
// the words alive through the interior pointer held by the byte slice.
func sysAlloc(size int) ([]byte, error) {
	words := make([]uint64, (size+wordSize-1)/wordSize)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), nil
}

func sysRealloc(old []byte, newSize int) ([]byte, error) {
	data, err := sysAlloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	return data, nil
}

func sysFree([]byte) error { return nil }
