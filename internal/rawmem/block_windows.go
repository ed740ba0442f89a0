//go:build windows

package rawmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// VirtualAlloc reserves at allocation-granularity boundaries, which are at least page aligned.
func sysMaxAlign() int { return windows.Getpagesize() }

func sysAlloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func sysRealloc(old []byte, newSize int) ([]byte, error) {
	data, err := sysAlloc(newSize)
	if err != nil {
		return nil, err
	}
	copy(data, old)
	if err := sysFree(old); err != nil {
		_ = sysFree(data)
		return nil, err
	}
	return data, nil
}

// MEM_RELEASE requires a zero size and frees the whole reservation.
func sysFree(data []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(data))), 0, windows.MEM_RELEASE)
}
