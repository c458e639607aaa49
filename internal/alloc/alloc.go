// Package alloc provides byte buffers with a guaranteed address alignment.
//
// The Go runtime does not expose aligned allocation directly; Bytes
// over-allocates by one alignment unit and re-slices to the first aligned
// offset. The returned slice has its capacity clipped to its length, so
// appends cannot grow into the padding.
package alloc

import (
	"fmt"
	"unsafe"
)

// Bytes returns a zeroed byte slice of the given size whose first byte is
// aligned to align bytes. align must be a positive power of two.
func Bytes(size, align int) []byte {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("alloc: alignment %d is not a positive power of two", align))
	}
	if size <= 0 {
		return nil
	}

	raw := make([]byte, size+align)
	off := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1))
	if off != 0 {
		off = align - off
	}

	return raw[off : off+size : off+size]
}
